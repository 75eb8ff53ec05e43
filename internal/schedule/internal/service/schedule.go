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

package service

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/vrecruit/vrecruit/internal/pkg/snowflake"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/domain"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/repository"
)

var (
	ErrInvalidSchedule  = errors.New("排期字段不完整")
	ErrInvalidDuration  = domain.ErrInvalidDuration
	ErrScheduleNotFound = repository.ErrScheduleNotFound
	ErrInvalidStatus    = repository.ErrInvalidStatus
	ErrNotAssigned      = errors.New("不是该场面试的评委")
	ErrOutsideWindow    = errors.New("不在可进入的时间窗口内")
)

type ScheduleService interface {
	Create(ctx context.Context, s domain.Schedule) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Schedule, error)
	// Approve 只允许从待审批流转
	Approve(ctx context.Context, id int64) error
	// Cancel 待审批和已批准都能取消，已完成不行
	Cancel(ctx context.Context, id int64) error
	// Complete 只由终面结论流程调用
	Complete(ctx context.Context, id int64) error
	Update(ctx context.Context, s domain.Schedule) error
	Delete(ctx context.Context, id int64) error
	// PendingList 待审批列表，调用方负责标注过期提示
	PendingList(ctx context.Context, offset, limit int) ([]domain.Schedule, error)
	ActiveList(ctx context.Context, offset, limit int) ([]domain.Schedule, error)
	ListByCandidate(ctx context.Context, candidateUid int64) ([]domain.Schedule, error)
	// ListByEvaluator 某个评委名下所有已批准的场次
	ListByEvaluator(ctx context.Context, evaluatorUid int64) ([]domain.Schedule, error)
	// CanStart 评委进入评分前的资格校验，窗口按当前时间即时计算
	CanStart(ctx context.Context, id, evaluatorUid int64) (domain.Schedule, error)
	// CountExpiredPending 审批停留超过提示时限的数量，巡检任务用
	CountExpiredPending(ctx context.Context) (int64, error)
}

type scheduleService struct {
	repo repository.ScheduleRepository
	gen  snowflake.Generator
	// 方便测试固定时间
	nowFunc func() time.Time
}

func NewScheduleService(repo repository.ScheduleRepository, gen snowflake.Generator) ScheduleService {
	return &scheduleService{
		repo:    repo,
		gen:     gen,
		nowFunc: time.Now,
	}
}

func (svc *scheduleService) Create(ctx context.Context, s domain.Schedule) (int64, error) {
	if err := svc.validate(s); err != nil {
		return 0, err
	}
	minutes, err := domain.ComputeDurationMinutes(s.StartTime, s.EndTime)
	if err != nil {
		return 0, err
	}
	id, err := svc.gen.Generate(snowflake.AppSchedule)
	if err != nil {
		return 0, err
	}
	s.Id = id.Int64()
	s.DurationMinutes = minutes
	// 新建一律待审批
	s.Status = domain.StatusPendingApproval
	return svc.repo.Create(ctx, s)
}

func (svc *scheduleService) validate(s domain.Schedule) error {
	if s.CandidateUid <= 0 ||
		!s.RoundType.Valid() ||
		s.InterviewDate == "" ||
		s.StartTime == "" ||
		s.EndTime == "" ||
		len(s.EvaluatorUids) == 0 {
		return ErrInvalidSchedule
	}
	return nil
}

func (svc *scheduleService) Detail(ctx context.Context, id int64) (domain.Schedule, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *scheduleService) Approve(ctx context.Context, id int64) error {
	return svc.repo.UpdateStatus(ctx, id,
		[]domain.Status{domain.StatusPendingApproval},
		domain.StatusScheduled)
}

func (svc *scheduleService) Cancel(ctx context.Context, id int64) error {
	return svc.repo.UpdateStatus(ctx, id,
		[]domain.Status{domain.StatusPendingApproval, domain.StatusScheduled},
		domain.StatusCancelled)
}

func (svc *scheduleService) Complete(ctx context.Context, id int64) error {
	return svc.repo.UpdateStatus(ctx, id,
		[]domain.Status{domain.StatusScheduled},
		domain.StatusCompleted)
}

func (svc *scheduleService) Update(ctx context.Context, s domain.Schedule) error {
	if err := svc.validate(s); err != nil {
		return err
	}
	minutes, err := domain.ComputeDurationMinutes(s.StartTime, s.EndTime)
	if err != nil {
		return err
	}
	old, err := svc.repo.FindById(ctx, s.Id)
	if err != nil {
		return err
	}
	// 已完成的排期是终态
	if old.Status == domain.StatusCompleted {
		return ErrInvalidStatus
	}
	s.DurationMinutes = minutes
	return svc.repo.Update(ctx, s)
}

func (svc *scheduleService) Delete(ctx context.Context, id int64) error {
	return svc.repo.Delete(ctx, id)
}

func (svc *scheduleService) PendingList(ctx context.Context, offset, limit int) ([]domain.Schedule, error) {
	return svc.repo.ListByStatus(ctx, domain.StatusPendingApproval, offset, limit)
}

func (svc *scheduleService) ActiveList(ctx context.Context, offset, limit int) ([]domain.Schedule, error) {
	return svc.repo.ListByStatus(ctx, domain.StatusScheduled, offset, limit)
}

func (svc *scheduleService) ListByCandidate(ctx context.Context, candidateUid int64) ([]domain.Schedule, error) {
	return svc.repo.ListByCandidate(ctx, candidateUid)
}

func (svc *scheduleService) ListByEvaluator(ctx context.Context, evaluatorUid int64) ([]domain.Schedule, error) {
	// 数据量有限，先按状态取出来再过滤评委
	ss, err := svc.repo.ListByStatus(ctx, domain.StatusScheduled, 0, 1000)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Schedule, 0, len(ss))
	for _, s := range ss {
		if slice.Contains(s.EvaluatorUids, evaluatorUid) {
			res = append(res, s)
		}
	}
	return res, nil
}

func (svc *scheduleService) CanStart(ctx context.Context, id, evaluatorUid int64) (domain.Schedule, error) {
	s, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return domain.Schedule{}, err
	}
	if !slice.Contains(s.EvaluatorUids, evaluatorUid) {
		return domain.Schedule{}, ErrNotAssigned
	}
	if s.Status != domain.StatusScheduled {
		return domain.Schedule{}, ErrInvalidStatus
	}
	if !s.CanStart(svc.nowFunc()) {
		return domain.Schedule{}, ErrOutsideWindow
	}
	return s, nil
}

func (svc *scheduleService) CountExpiredPending(ctx context.Context) (int64, error) {
	cutoff := svc.nowFunc().Add(-12 * time.Hour).UnixMilli()
	return svc.repo.CountPendingBefore(ctx, cutoff)
}
