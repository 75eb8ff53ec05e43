package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/domain"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/repository/dao"
)

var (
	ErrScheduleNotFound = dao.ErrScheduleNotFound
	ErrInvalidStatus    = dao.ErrInvalidStatus
)

type ScheduleRepository interface {
	Create(ctx context.Context, s domain.Schedule) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Schedule, error)
	UpdateStatus(ctx context.Context, id int64, from []domain.Status, to domain.Status) error
	Update(ctx context.Context, s domain.Schedule) error
	Delete(ctx context.Context, id int64) error
	ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Schedule, error)
	ListByCandidate(ctx context.Context, candidateUid int64) ([]domain.Schedule, error)
	CountPendingBefore(ctx context.Context, ctimeBefore int64) (int64, error)
}

type scheduleRepository struct {
	dao dao.ScheduleDAO
}

func NewScheduleRepository(d dao.ScheduleDAO) ScheduleRepository {
	return &scheduleRepository{
		dao: d,
	}
}

func (r *scheduleRepository) Create(ctx context.Context, s domain.Schedule) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(s))
}

func (r *scheduleRepository) FindById(ctx context.Context, id int64) (domain.Schedule, error) {
	s, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Schedule{}, err
	}
	return r.toDomain(s), nil
}

func (r *scheduleRepository) UpdateStatus(ctx context.Context, id int64, from []domain.Status, to domain.Status) error {
	return r.dao.UpdateStatus(ctx, id,
		slice.Map(from, func(idx int, src domain.Status) string {
			return string(src)
		}), string(to))
}

func (r *scheduleRepository) Update(ctx context.Context, s domain.Schedule) error {
	return r.dao.Update(ctx, r.toEntity(s))
}

func (r *scheduleRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *scheduleRepository) ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Schedule, error) {
	ss, err := r.dao.ListByStatus(ctx, string(status), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(idx int, src dao.Schedule) domain.Schedule {
		return r.toDomain(src)
	}), nil
}

func (r *scheduleRepository) ListByCandidate(ctx context.Context, candidateUid int64) ([]domain.Schedule, error) {
	ss, err := r.dao.ListByCandidate(ctx, candidateUid)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(idx int, src dao.Schedule) domain.Schedule {
		return r.toDomain(src)
	}), nil
}

func (r *scheduleRepository) CountPendingBefore(ctx context.Context, ctimeBefore int64) (int64, error) {
	return r.dao.CountPendingBefore(ctx, ctimeBefore)
}

func (r *scheduleRepository) toEntity(s domain.Schedule) dao.Schedule {
	return dao.Schedule{
		Id:              s.Id,
		CandidateUid:    s.CandidateUid,
		RoundType:       string(s.RoundType),
		InterviewDate:   s.InterviewDate,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		Mode:            string(s.Mode),
		MeetingLink:     s.MeetingLink,
		Notes:           s.Notes,
		Status:          string(s.Status),
		EvaluatorUids: sqlx.JsonColumn[[]int64]{
			Val:   s.EvaluatorUids,
			Valid: len(s.EvaluatorUids) > 0,
		},
		CreatedBy: s.CreatedBy,
	}
}

func (r *scheduleRepository) toDomain(s dao.Schedule) domain.Schedule {
	return domain.Schedule{
		Id:              s.Id,
		CandidateUid:    s.CandidateUid,
		RoundType:       domain.RoundType(s.RoundType),
		InterviewDate:   s.InterviewDate,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		Mode:            domain.Mode(s.Mode),
		MeetingLink:     s.MeetingLink,
		Notes:           s.Notes,
		Status:          domain.Status(s.Status),
		EvaluatorUids:   s.EvaluatorUids.Val,
		CreatedBy:       s.CreatedBy,
		Ctime:           s.Ctime,
		Utime:           s.Utime,
	}
}
