// Copyright 2024 vrecruit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schedule

import (
	"github.com/vrecruit/vrecruit/internal/schedule/internal/domain"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/job"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/service"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/web"
)

type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Schedule = domain.Schedule
type RoundType = domain.RoundType
type Status = domain.Status

const (
	RoundHR        = domain.RoundHR
	RoundTechnical = domain.RoundTechnical
	RoundClassroom = domain.RoundClassroom
	RoundFinal     = domain.RoundFinal

	StatusPendingApproval = domain.StatusPendingApproval
	StatusScheduled       = domain.StatusScheduled
	StatusCompleted       = domain.StatusCompleted
	StatusCancelled       = domain.StatusCancelled
)

// CanonicalRounds 流程推进的固定轮次顺序
var CanonicalRounds = domain.CanonicalRounds

var (
	ErrScheduleNotFound = service.ErrScheduleNotFound
	ErrInvalidStatus    = service.ErrInvalidStatus
	ErrNotAssigned      = service.ErrNotAssigned
	ErrOutsideWindow    = service.ErrOutsideWindow
)

type ScheduleService = service.ScheduleService

type ExpiredApprovalJob = job.ExpiredApprovalJob

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      ScheduleService
	// ExpiredJob 巡检长时间待审批的排期
	ExpiredJob *ExpiredApprovalJob
}
