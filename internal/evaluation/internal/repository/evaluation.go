package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/domain"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/repository/dao"
)

var (
	ErrEvaluationNotFound = dao.ErrEvaluationNotFound
	ErrEvaluationExists   = dao.ErrEvaluationExists
)

type EvaluationRepository interface {
	Create(ctx context.Context, e domain.Evaluation) (int64, error)
	FindByScheduleAndEvaluator(ctx context.Context, scheduleId, evaluatorUid int64) (domain.Evaluation, error)
	ListByEvaluator(ctx context.Context, evaluatorUid int64) ([]domain.Evaluation, error)
	ListByCandidate(ctx context.Context, candidateUid int64, onlyComplete bool) ([]domain.Evaluation, error)
	ListBySchedule(ctx context.Context, scheduleId int64) ([]domain.Evaluation, error)
}

type evaluationRepository struct {
	dao dao.EvaluationDAO
}

func NewEvaluationRepository(d dao.EvaluationDAO) EvaluationRepository {
	return &evaluationRepository{
		dao: d,
	}
}

func (r *evaluationRepository) Create(ctx context.Context, e domain.Evaluation) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(e))
}

func (r *evaluationRepository) FindByScheduleAndEvaluator(ctx context.Context, scheduleId, evaluatorUid int64) (domain.Evaluation, error) {
	e, err := r.dao.FindByScheduleAndEvaluator(ctx, scheduleId, evaluatorUid)
	if err != nil {
		return domain.Evaluation{}, err
	}
	return r.toDomain(e), nil
}

func (r *evaluationRepository) ListByEvaluator(ctx context.Context, evaluatorUid int64) ([]domain.Evaluation, error) {
	es, err := r.dao.ListByEvaluator(ctx, evaluatorUid)
	if err != nil {
		return nil, err
	}
	return r.toDomainList(es), nil
}

func (r *evaluationRepository) ListByCandidate(ctx context.Context, candidateUid int64, onlyComplete bool) ([]domain.Evaluation, error) {
	es, err := r.dao.ListByCandidate(ctx, candidateUid, onlyComplete)
	if err != nil {
		return nil, err
	}
	return r.toDomainList(es), nil
}

func (r *evaluationRepository) ListBySchedule(ctx context.Context, scheduleId int64) ([]domain.Evaluation, error) {
	es, err := r.dao.ListBySchedule(ctx, scheduleId)
	if err != nil {
		return nil, err
	}
	return r.toDomainList(es), nil
}

func (r *evaluationRepository) toDomainList(es []dao.Evaluation) []domain.Evaluation {
	return slice.Map(es, func(idx int, src dao.Evaluation) domain.Evaluation {
		return r.toDomain(src)
	})
}

func (r *evaluationRepository) toEntity(e domain.Evaluation) dao.Evaluation {
	quantitative := make(map[string]dao.ModuleScore, len(e.QuantitativeScores))
	for name, ms := range e.QuantitativeScores {
		quantitative[name] = dao.ModuleScore{
			Score: ms.Score,
			Max:   ms.Max,
		}
	}
	qualitative := slice.Map(e.QualitativeComments, func(idx int, src domain.Comment) dao.Comment {
		return dao.Comment{
			Round:   src.Round,
			Comment: src.Comment,
		}
	})
	return dao.Evaluation{
		Id:                   e.Id,
		ScheduleId:           e.ScheduleId,
		EvaluatorUid:         e.EvaluatorUid,
		CandidateUid:         e.CandidateUid,
		RoundType:            e.RoundType,
		SubmissionTime:       e.SubmissionTime,
		TimeRemainingSeconds: e.TimeRemainingSeconds,
		QuantitativeScores: sqlx.JsonColumn[map[string]dao.ModuleScore]{
			Val:   quantitative,
			Valid: true,
		},
		QualitativeComments: sqlx.JsonColumn[[]dao.Comment]{
			Val:   qualitative,
			Valid: true,
		},
		TotalScore:    e.TotalScore,
		TotalMaxScore: e.TotalMaxScore,
		IsComplete:    e.IsComplete,
	}
}

func (r *evaluationRepository) toDomain(e dao.Evaluation) domain.Evaluation {
	quantitative := make(map[string]domain.ModuleScore, len(e.QuantitativeScores.Val))
	for name, ms := range e.QuantitativeScores.Val {
		quantitative[name] = domain.ModuleScore{
			Score: ms.Score,
			Max:   ms.Max,
		}
	}
	qualitative := slice.Map(e.QualitativeComments.Val, func(idx int, src dao.Comment) domain.Comment {
		return domain.Comment{
			Round:   src.Round,
			Comment: src.Comment,
		}
	})
	return domain.Evaluation{
		Id:                   e.Id,
		ScheduleId:           e.ScheduleId,
		EvaluatorUid:         e.EvaluatorUid,
		CandidateUid:         e.CandidateUid,
		RoundType:            e.RoundType,
		SubmissionTime:       e.SubmissionTime,
		TimeRemainingSeconds: e.TimeRemainingSeconds,
		QuantitativeScores:   quantitative,
		QualitativeComments:  qualitative,
		TotalScore:           e.TotalScore,
		TotalMaxScore:        e.TotalMaxScore,
		IsComplete:           e.IsComplete,
		Ctime:                e.Ctime,
	}
}
