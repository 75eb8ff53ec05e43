package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrecruit/vrecruit/internal/candidate"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/domain"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/event"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/repository"
	"github.com/vrecruit/vrecruit/internal/pkg/snowflake"
	"github.com/vrecruit/vrecruit/internal/schedule"
)

const (
	testScheduleId   = int64(7001)
	testEvaluatorUid = int64(2001)
	testCandidateUid = int64(1001)
)

// fakeEvaluationRepo 内存实现，failNext 置位时下一次落库失败
type fakeEvaluationRepo struct {
	repository.EvaluationRepository
	evaluations map[string]domain.Evaluation
	failNext    bool
}

func newFakeEvaluationRepo() *fakeEvaluationRepo {
	return &fakeEvaluationRepo{evaluations: map[string]domain.Evaluation{}}
}

func (f *fakeEvaluationRepo) key(scheduleId, evaluatorUid int64) string {
	return sessionKey(scheduleId, evaluatorUid)
}

func (f *fakeEvaluationRepo) Create(ctx context.Context, e domain.Evaluation) (int64, error) {
	if f.failNext {
		f.failNext = false
		return 0, errors.New("数据库抖了一下")
	}
	k := f.key(e.ScheduleId, e.EvaluatorUid)
	if _, ok := f.evaluations[k]; ok {
		return 0, repository.ErrEvaluationExists
	}
	f.evaluations[k] = e
	return e.Id, nil
}

func (f *fakeEvaluationRepo) FindByScheduleAndEvaluator(ctx context.Context, scheduleId, evaluatorUid int64) (domain.Evaluation, error) {
	e, ok := f.evaluations[f.key(scheduleId, evaluatorUid)]
	if !ok {
		return domain.Evaluation{}, repository.ErrEvaluationNotFound
	}
	return e, nil
}

type fakeProducer struct {
	events []event.EvaluationEvent
}

func (f *fakeProducer) Produce(ctx context.Context, evt event.EvaluationEvent) error {
	f.events = append(f.events, evt)
	return nil
}

// fakeScheduleSvc 只放行固定的一场技术面
type fakeScheduleSvc struct {
	schedule.ScheduleService
	completeErr error
	completed   []int64
}

func (f *fakeScheduleSvc) CanStart(ctx context.Context, id, evaluatorUid int64) (schedule.Schedule, error) {
	if id != testScheduleId {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}
	if evaluatorUid != testEvaluatorUid {
		return schedule.Schedule{}, schedule.ErrNotAssigned
	}
	return schedule.Schedule{
		Id:              id,
		CandidateUid:    testCandidateUid,
		RoundType:       schedule.RoundTechnical,
		DurationMinutes: 2,
		Status:          schedule.StatusScheduled,
	}, nil
}

func (f *fakeScheduleSvc) Detail(ctx context.Context, id int64) (schedule.Schedule, error) {
	return schedule.Schedule{Id: id, CandidateUid: testCandidateUid}, nil
}

func (f *fakeScheduleSvc) Complete(ctx context.Context, id int64) error {
	if f.completeErr != nil {
		return f.completeErr
	}
	f.completed = append(f.completed, id)
	return nil
}

type fakeCandidateSvc struct {
	candidate.CandidateService
	verdicts map[int64]candidate.Verdict
}

func (f *fakeCandidateSvc) SetFinalVerdict(ctx context.Context, uid int64, verdict candidate.Verdict) error {
	if !verdict.Valid() {
		return candidate.ErrInvalidVerdict
	}
	if f.verdicts == nil {
		f.verdicts = map[int64]candidate.Verdict{}
	}
	f.verdicts[uid] = verdict
	return nil
}

type sessionTestEnv struct {
	repo        *fakeEvaluationRepo
	producer    *fakeProducer
	scheduleSvc *fakeScheduleSvc
	svc         EvaluationService
	manager     *sessionManager
}

func newSessionTestEnv(t *testing.T) *sessionTestEnv {
	gen, err := snowflake.NewAppSnowflake(0)
	require.NoError(t, err)
	repo := newFakeEvaluationRepo()
	producer := &fakeProducer{}
	scheduleSvc := &fakeScheduleSvc{}
	svc := NewEvaluationService(repo, gen, producer, scheduleSvc, &fakeCandidateSvc{})
	manager := NewSessionManager(svc, scheduleSvc).(*sessionManager)
	return &sessionTestEnv{
		repo:        repo,
		producer:    producer,
		scheduleSvc: scheduleSvc,
		svc:         svc,
		manager:     manager,
	}
}

// live 拿到底层会话并停掉后台计时，测试里手动 tick
func (env *sessionTestEnv) live(t *testing.T) *liveSession {
	sess, ok := env.manager.sessions.Load(sessionKey(testScheduleId, testEvaluatorUid))
	require.True(t, ok)
	sess.stop()
	return sess
}

func TestSessionManager_Start(t *testing.T) {
	t.Parallel()
	env := newSessionTestEnv(t)
	s, err := env.manager.Start(context.Background(), testScheduleId, testEvaluatorUid)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionActive, s.State)
	assert.Equal(t, int64(120), s.RemainingSeconds)
	// 每个评分项初始化为 0
	require.Len(t, s.Responses[domain.ModuleTechnical1], 6)
	require.Len(t, s.Responses[domain.ModuleTechnical2], 2)

	// 重复 Start 接上原会话
	again, err := env.manager.Start(context.Background(), testScheduleId, testEvaluatorUid)
	require.NoError(t, err)
	assert.Equal(t, s.ScheduleId, again.ScheduleId)

	_, err = env.manager.Start(context.Background(), testScheduleId, 9999)
	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestSessionManager_SaveAndSubmit(t *testing.T) {
	t.Parallel()
	env := newSessionTestEnv(t)
	ctx := context.Background()
	_, err := env.manager.Start(ctx, testScheduleId, testEvaluatorUid)
	require.NoError(t, err)
	env.live(t)

	_, err = env.manager.Save(ctx, testScheduleId, testEvaluatorUid,
		domain.ModuleTechnical1, map[string]int64{"core_skills": 11}, "")
	assert.ErrorIs(t, err, ErrInvalidScore)
	_, err = env.manager.Save(ctx, testScheduleId, testEvaluatorUid,
		domain.ModuleTechnical1, map[string]int64{"verbal": 5}, "")
	assert.ErrorIs(t, err, ErrInvalidScore)

	_, err = env.manager.Save(ctx, testScheduleId, testEvaluatorUid,
		domain.ModuleTechnical1, map[string]int64{"core_skills": 9, "algorithms": 8}, "底子不错")
	require.NoError(t, err)

	s, err := env.manager.Submit(ctx, testScheduleId, testEvaluatorUid)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionSubmitted, s.State)

	persisted := env.repo.evaluations[sessionKey(testScheduleId, testEvaluatorUid)]
	assert.True(t, persisted.IsComplete)
	assert.Equal(t, int64(17), persisted.TotalScore)
	// 八个评分项全部初始化过，满分 80
	assert.Equal(t, int64(80), persisted.TotalMaxScore)
	assert.Equal(t, "Technical Round", persisted.RoundType)
	require.Len(t, persisted.QualitativeComments, 1)
	assert.Equal(t, "底子不错", persisted.QualitativeComments[0].Comment)
	// 事件广播了一次
	require.Len(t, env.producer.events, 1)
	assert.Equal(t, testCandidateUid, env.producer.events[0].CandidateUid)

	// 交完之后不能再改
	_, err = env.manager.Save(ctx, testScheduleId, testEvaluatorUid,
		domain.ModuleTechnical1, map[string]int64{"core_skills": 1}, "")
	assert.ErrorIs(t, err, ErrInvalidSessionState)
}

func TestSessionManager_TickAndAutoSubmit(t *testing.T) {
	t.Parallel()
	env := newSessionTestEnv(t)
	ctx := context.Background()
	_, err := env.manager.Start(ctx, testScheduleId, testEvaluatorUid)
	require.NoError(t, err)
	sess := env.live(t)

	// 每 tick 减一秒
	done := env.manager.tick(sess)
	assert.False(t, done)
	s, err := env.manager.Session(ctx, testScheduleId, testEvaluatorUid)
	require.NoError(t, err)
	assert.Equal(t, int64(119), s.RemainingSeconds)

	// 拨到最后一秒，下一个 tick 触发自动交卷
	sess.mu.Lock()
	sess.remaining = 1
	sess.mu.Unlock()
	done = env.manager.tick(sess)
	assert.True(t, done)

	s, err = env.manager.Session(ctx, testScheduleId, testEvaluatorUid)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionSubmitted, s.State)
	persisted := env.repo.evaluations[sessionKey(testScheduleId, testEvaluatorUid)]
	// 倒计时打断的提交 is_complete = false
	assert.False(t, persisted.IsComplete)
	assert.Equal(t, int64(0), persisted.TimeRemainingSeconds)
}

func TestSessionManager_FailureRearmsFrozen(t *testing.T) {
	t.Parallel()
	env := newSessionTestEnv(t)
	ctx := context.Background()
	_, err := env.manager.Start(ctx, testScheduleId, testEvaluatorUid)
	require.NoError(t, err)
	sess := env.live(t)

	// 自动交卷赶上数据库故障
	sess.mu.Lock()
	sess.remaining = 1
	sess.mu.Unlock()
	env.repo.failNext = true
	done := env.manager.tick(sess)
	assert.True(t, done)

	// 回到 Active，剩余时间冻结在 0
	s, err := env.manager.Session(ctx, testScheduleId, testEvaluatorUid)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionActive, s.State)
	assert.Equal(t, int64(0), s.RemainingSeconds)

	// 冻结在 0 秒也允许手动重交
	s, err = env.manager.Submit(ctx, testScheduleId, testEvaluatorUid)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionSubmitted, s.State)

	// 重复交卷
	_, err = env.manager.Submit(ctx, testScheduleId, testEvaluatorUid)
	assert.ErrorIs(t, err, ErrEvaluationExists)
}

func TestSessionManager_StartAfterSubmitted(t *testing.T) {
	t.Parallel()
	env := newSessionTestEnv(t)
	ctx := context.Background()
	_, err := env.manager.Start(ctx, testScheduleId, testEvaluatorUid)
	require.NoError(t, err)
	env.live(t)
	_, err = env.manager.Submit(ctx, testScheduleId, testEvaluatorUid)
	require.NoError(t, err)
	require.NoError(t, env.manager.Close(ctx, testScheduleId, testEvaluatorUid))

	// 会话没了，但库里已有记录
	_, err = env.manager.Start(ctx, testScheduleId, testEvaluatorUid)
	assert.ErrorIs(t, err, ErrEvaluationExists)
	_, err = env.manager.Session(ctx, testScheduleId, testEvaluatorUid)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
