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

	"github.com/gotomicro/ego/core/elog"
	"github.com/vrecruit/vrecruit/internal/candidate"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/domain"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/event"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/repository"
	"github.com/vrecruit/vrecruit/internal/pkg/snowflake"
	"github.com/vrecruit/vrecruit/internal/schedule"
)

var (
	ErrEvaluationExists   = repository.ErrEvaluationExists
	ErrEvaluationNotFound = repository.ErrEvaluationNotFound
	ErrInvalidVerdict     = candidate.ErrInvalidVerdict
)

type EvaluationService interface {
	// Submit 落库一条评价并广播事件，事件失败不影响结果
	Submit(ctx context.Context, e domain.Evaluation) (int64, error)
	// ListMine 评委自己的历史评价
	ListMine(ctx context.Context, evaluatorUid int64) ([]domain.Evaluation, error)
	ListByCandidate(ctx context.Context, candidateUid int64, onlyComplete bool) ([]domain.Evaluation, error)
	ListBySchedule(ctx context.Context, scheduleId int64) ([]domain.Evaluation, error)
	// Submitted 该评委是否已经交过这一场
	Submitted(ctx context.Context, scheduleId, evaluatorUid int64) (bool, error)
	// Verdict 终面结论。结论写入之后排期状态转换失败只返回警告，
	// 不回滚结论
	Verdict(ctx context.Context, scheduleId int64, verdict string) (warning bool, err error)
}

type evaluationService struct {
	repo         repository.EvaluationRepository
	gen          snowflake.Generator
	producer     event.EvaluationEventProducer
	scheduleSvc  schedule.ScheduleService
	candidateSvc candidate.CandidateService
	logger       *elog.Component
}

func NewEvaluationService(repo repository.EvaluationRepository,
	gen snowflake.Generator,
	producer event.EvaluationEventProducer,
	scheduleSvc schedule.ScheduleService,
	candidateSvc candidate.CandidateService) EvaluationService {
	return &evaluationService{
		repo:         repo,
		gen:          gen,
		producer:     producer,
		scheduleSvc:  scheduleSvc,
		candidateSvc: candidateSvc,
		logger:       elog.DefaultLogger,
	}
}

func (svc *evaluationService) Submit(ctx context.Context, e domain.Evaluation) (int64, error) {
	id, err := svc.gen.Generate(snowflake.AppEvaluation)
	if err != nil {
		return 0, err
	}
	e.Id = id.Int64()
	e.SubmissionTime = time.Now().UnixMilli()
	eid, err := svc.repo.Create(ctx, e)
	if err != nil {
		return 0, err
	}
	evt := event.EvaluationEvent{
		ScheduleId:   e.ScheduleId,
		EvaluatorUid: e.EvaluatorUid,
		CandidateUid: e.CandidateUid,
		RoundType:    e.RoundType,
		TotalScore:   e.TotalScore,
		TotalMax:     e.TotalMaxScore,
		IsComplete:   e.IsComplete,
	}
	if er := svc.producer.Produce(ctx, evt); er != nil {
		svc.logger.Error("发送评价提交事件失败",
			elog.FieldErr(er),
			elog.Int64("scheduleId", e.ScheduleId),
			elog.Int64("evaluatorUid", e.EvaluatorUid))
	}
	return eid, nil
}

func (svc *evaluationService) ListMine(ctx context.Context, evaluatorUid int64) ([]domain.Evaluation, error) {
	return svc.repo.ListByEvaluator(ctx, evaluatorUid)
}

func (svc *evaluationService) ListByCandidate(ctx context.Context, candidateUid int64, onlyComplete bool) ([]domain.Evaluation, error) {
	return svc.repo.ListByCandidate(ctx, candidateUid, onlyComplete)
}

func (svc *evaluationService) ListBySchedule(ctx context.Context, scheduleId int64) ([]domain.Evaluation, error) {
	return svc.repo.ListBySchedule(ctx, scheduleId)
}

func (svc *evaluationService) Submitted(ctx context.Context, scheduleId, evaluatorUid int64) (bool, error) {
	_, err := svc.repo.FindByScheduleAndEvaluator(ctx, scheduleId, evaluatorUid)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrEvaluationNotFound) {
		return false, nil
	}
	return false, err
}

func (svc *evaluationService) Verdict(ctx context.Context, scheduleId int64, verdict string) (bool, error) {
	s, err := svc.scheduleSvc.Detail(ctx, scheduleId)
	if err != nil {
		return false, err
	}
	err = svc.candidateSvc.SetFinalVerdict(ctx, s.CandidateUid, candidate.Verdict(verdict))
	if err != nil {
		return false, err
	}
	// 结论已经是权威数据了，状态没转过去只提示
	if er := svc.scheduleSvc.Complete(ctx, scheduleId); er != nil {
		svc.logger.Warn("结论已保存，但排期状态更新失败",
			elog.FieldErr(er),
			elog.Int64("scheduleId", scheduleId))
		return true, nil
	}
	return false, nil
}
