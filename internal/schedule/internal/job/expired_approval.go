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

package job

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/service"
)

// ExpiredApprovalJob 巡检停留超过提示时限的待审批排期。
// 过期只是给管理员的提示，这里只记日志，不动状态
type ExpiredApprovalJob struct {
	svc    service.ScheduleService
	logger *elog.Component
}

func NewExpiredApprovalJob(svc service.ScheduleService) *ExpiredApprovalJob {
	return &ExpiredApprovalJob{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (j *ExpiredApprovalJob) Name() string {
	return "schedule_expired_approval"
}

func (j *ExpiredApprovalJob) Run(ctx context.Context) error {
	cnt, err := j.svc.CountExpiredPending(ctx)
	if err != nil {
		return err
	}
	if cnt > 0 {
		j.logger.Warn("存在长时间未审批的排期",
			elog.Int64("count", cnt))
	}
	return nil
}
