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

package candidate

import (
	"github.com/vrecruit/vrecruit/internal/candidate/internal/domain"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/service"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/web"
)

type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Profile = domain.Profile
type Verdict = domain.Verdict

const (
	VerdictRecommended    = domain.VerdictRecommended
	VerdictNotRecommended = domain.VerdictNotRecommended
	VerdictWaitlist       = domain.VerdictWaitlist
)

var (
	ErrProfileNotFound = service.ErrProfileNotFound
	ErrInvalidVerdict  = service.ErrInvalidVerdict
)

type CandidateService = service.CandidateService

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      CandidateService
}
