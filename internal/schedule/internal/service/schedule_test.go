package service

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrecruit/vrecruit/internal/pkg/snowflake"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/domain"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/repository"
)

// fakeScheduleRepo 内存实现，避免依赖数据库
type fakeScheduleRepo struct {
	repository.ScheduleRepository
	schedules map[int64]domain.Schedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: map[int64]domain.Schedule{}}
}

func (f *fakeScheduleRepo) Create(ctx context.Context, s domain.Schedule) (int64, error) {
	s.Ctime = time.Now().UnixMilli()
	f.schedules[s.Id] = s
	return s.Id, nil
}

func (f *fakeScheduleRepo) FindById(ctx context.Context, id int64) (domain.Schedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return domain.Schedule{}, repository.ErrScheduleNotFound
	}
	return s, nil
}

func (f *fakeScheduleRepo) UpdateStatus(ctx context.Context, id int64, from []domain.Status, to domain.Status) error {
	s, ok := f.schedules[id]
	if !ok || !slice.Contains(from, s.Status) {
		return repository.ErrInvalidStatus
	}
	s.Status = to
	f.schedules[id] = s
	return nil
}

func (f *fakeScheduleRepo) ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Schedule, error) {
	res := make([]domain.Schedule, 0, len(f.schedules))
	for _, s := range f.schedules {
		if s.Status == status {
			res = append(res, s)
		}
	}
	return res, nil
}

func (f *fakeScheduleRepo) CountPendingBefore(ctx context.Context, ctimeBefore int64) (int64, error) {
	var cnt int64
	for _, s := range f.schedules {
		if s.Status == domain.StatusPendingApproval && s.Ctime < ctimeBefore {
			cnt++
		}
	}
	return cnt, nil
}

func newTestService(t *testing.T, repo repository.ScheduleRepository) *scheduleService {
	gen, err := snowflake.NewAppSnowflake(0)
	require.NoError(t, err)
	return NewScheduleService(repo, gen).(*scheduleService)
}

func validSchedule() domain.Schedule {
	return domain.Schedule{
		CandidateUid:  1001,
		RoundType:     domain.RoundTechnical,
		InterviewDate: "2026-03-10",
		StartTime:     "10:00",
		EndTime:       "11:00",
		Mode:          domain.ModeOnline,
		EvaluatorUids: []int64{2001, 2002},
		CreatedBy:     3001,
	}
}

func TestScheduleService_Create(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	id, err := svc.Create(context.Background(), validSchedule())
	require.NoError(t, err)
	assert.True(t, id > 0)

	created, err := svc.Detail(context.Background(), id)
	require.NoError(t, err)
	// 新建强制待审批，时长按起止算出
	assert.Equal(t, domain.StatusPendingApproval, created.Status)
	assert.Equal(t, int64(60), created.DurationMinutes)

	bad := validSchedule()
	bad.EndTime = "10:00"
	_, err = svc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	bad = validSchedule()
	bad.EvaluatorUids = nil
	_, err = svc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	bad = validSchedule()
	bad.RoundType = "Coffee Round"
	_, err = svc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestScheduleService_StatusTransitions(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	id, err := svc.Create(context.Background(), validSchedule())
	require.NoError(t, err)

	// 没批准之前不能完成
	assert.ErrorIs(t, svc.Complete(context.Background(), id), ErrInvalidStatus)

	require.NoError(t, svc.Approve(context.Background(), id))
	// 重复批准
	assert.ErrorIs(t, svc.Approve(context.Background(), id), ErrInvalidStatus)

	require.NoError(t, svc.Complete(context.Background(), id))
	// 已完成不能取消
	assert.ErrorIs(t, svc.Cancel(context.Background(), id), ErrInvalidStatus)
}

func TestScheduleService_CanStart(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	s := validSchedule()
	id, err := svc.Create(context.Background(), s)
	require.NoError(t, err)

	start, err := time.ParseInLocation("2006-01-02 15:04",
		s.InterviewDate+" "+s.StartTime, time.Local)
	require.NoError(t, err)
	svc.nowFunc = func() time.Time { return start.Add(-10 * time.Minute) }

	// 待审批状态不放行
	_, err = svc.CanStart(context.Background(), id, 2001)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	require.NoError(t, svc.Approve(context.Background(), id))

	_, err = svc.CanStart(context.Background(), id, 9999)
	assert.ErrorIs(t, err, ErrNotAssigned)

	got, err := svc.CanStart(context.Background(), id, 2001)
	require.NoError(t, err)
	assert.Equal(t, id, got.Id)

	svc.nowFunc = func() time.Time { return start.Add(-20 * time.Minute) }
	_, err = svc.CanStart(context.Background(), id, 2001)
	assert.ErrorIs(t, err, ErrOutsideWindow)

	svc.nowFunc = func() time.Time { return start.Add(61 * time.Minute) }
	_, err = svc.CanStart(context.Background(), id, 2001)
	assert.ErrorIs(t, err, ErrOutsideWindow)
}

func TestScheduleService_CountExpiredPending(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	id, err := svc.Create(context.Background(), validSchedule())
	require.NoError(t, err)
	// 把创建时间拨回 13 小时前
	s := repo.schedules[id]
	s.Ctime = time.Now().Add(-13 * time.Hour).UnixMilli()
	repo.schedules[id] = s

	cnt, err := svc.CountExpiredPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}
