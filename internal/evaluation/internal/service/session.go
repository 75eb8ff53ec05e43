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
	"fmt"
	"sync"
	"time"

	"github.com/ecodeclub/ekit/syncx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/domain"
	"github.com/vrecruit/vrecruit/internal/schedule"
)

var (
	ErrSessionNotFound     = errors.New("评分会话不存在")
	ErrInvalidSessionState = errors.New("会话状态不允许该操作")
	ErrInvalidScore        = errors.New("评分不合法")
	ErrVerdictOnly         = errors.New("终面没有计时评分")

	ErrNotAssigned    = schedule.ErrNotAssigned
	ErrOutsideWindow  = schedule.ErrOutsideWindow
	ErrInvalidStatus  = schedule.ErrInvalidStatus
	ErrNotFoundStatus = schedule.ErrScheduleNotFound
)

// SessionManager 管一个评委在一场面试里的整个评分过程：
// 进入即开始倒计时，每秒减一，归零自动交卷。
// 一个 (schedule, evaluator) 同时只有一个会话
type SessionManager interface {
	Start(ctx context.Context, scheduleId, evaluatorUid int64) (domain.Session, error)
	// Save 暂存某个模块的分数和评语，只在 Active 状态下有效
	Save(ctx context.Context, scheduleId, evaluatorUid int64,
		module string, scores map[string]int64, comment string) (domain.Session, error)
	// Submit 评委主动交卷，is_complete = true
	Submit(ctx context.Context, scheduleId, evaluatorUid int64) (domain.Session, error)
	Session(ctx context.Context, scheduleId, evaluatorUid int64) (domain.Session, error)
	// Close 评委离开页面，丢弃会话并停掉计时器
	Close(ctx context.Context, scheduleId, evaluatorUid int64) error
}

type liveSession struct {
	mu        sync.Mutex
	state     domain.SessionState
	remaining int64
	// responses: 模块 -> 评分项 -> 分数
	responses map[string]map[string]int64
	comments  map[string]string

	scheduleId   int64
	evaluatorUid int64
	candidateUid int64
	roundType    string

	stopOnce sync.Once
	done     chan struct{}
}

// stop 停掉计时器，幂等。每条退出路径都必须走到这里
func (s *liveSession) stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

func (s *liveSession) snapshot() domain.Session {
	responses := make(map[string]map[string]int64, len(s.responses))
	for module, scores := range s.responses {
		cp := make(map[string]int64, len(scores))
		for k, v := range scores {
			cp[k] = v
		}
		responses[module] = cp
	}
	comments := make(map[string]string, len(s.comments))
	for k, v := range s.comments {
		comments[k] = v
	}
	return domain.Session{
		ScheduleId:       s.scheduleId,
		EvaluatorUid:     s.evaluatorUid,
		CandidateUid:     s.candidateUid,
		RoundType:        s.roundType,
		State:            s.state,
		RemainingSeconds: s.remaining,
		Responses:        responses,
		Comments:         comments,
	}
}

type sessionManager struct {
	sessions    syncx.Map[string, *liveSession]
	evalSvc     EvaluationService
	scheduleSvc schedule.ScheduleService
	logger      *elog.Component
}

func NewSessionManager(evalSvc EvaluationService,
	scheduleSvc schedule.ScheduleService) SessionManager {
	return &sessionManager{
		evalSvc:     evalSvc,
		scheduleSvc: scheduleSvc,
		logger:      elog.DefaultLogger,
	}
}

func sessionKey(scheduleId, evaluatorUid int64) string {
	return fmt.Sprintf("%d:%d", scheduleId, evaluatorUid)
}

func (m *sessionManager) Start(ctx context.Context, scheduleId, evaluatorUid int64) (domain.Session, error) {
	key := sessionKey(scheduleId, evaluatorUid)
	// 刷新页面重进，直接回放现有会话
	if sess, ok := m.sessions.Load(key); ok {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		return sess.snapshot(), nil
	}
	submitted, err := m.evalSvc.Submitted(ctx, scheduleId, evaluatorUid)
	if err != nil {
		return domain.Session{}, err
	}
	if submitted {
		return domain.Session{}, ErrEvaluationExists
	}
	s, err := m.scheduleSvc.CanStart(ctx, scheduleId, evaluatorUid)
	if err != nil {
		return domain.Session{}, err
	}
	if domain.VerdictOnly(string(s.RoundType)) {
		return domain.Session{}, ErrVerdictOnly
	}
	sess := &liveSession{
		state:        domain.SessionActive,
		remaining:    s.DurationMinutes * 60,
		responses:    domain.InitialResponses(string(s.RoundType)),
		comments:     make(map[string]string),
		scheduleId:   scheduleId,
		evaluatorUid: evaluatorUid,
		candidateUid: s.CandidateUid,
		roundType:    string(s.RoundType),
		done:         make(chan struct{}),
	}
	if actual, loaded := m.sessions.LoadOrStore(key, sess); loaded {
		// 并发 Start 输掉的一方用赢家的会话
		actual.mu.Lock()
		defer actual.mu.Unlock()
		return actual.snapshot(), nil
	}
	go m.run(sess)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// run 会话唯一的计时 goroutine，每秒 tick 一次。
// 自动交卷触发之后无论成败都退出，计时器永不复活
func (m *sessionManager) run(sess *liveSession) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-sess.done:
			return
		case <-ticker.C:
			if m.tick(sess) {
				return
			}
		}
	}
}

// tick 减一秒，归零时触发一次自动交卷。返回 true 表示计时结束
func (m *sessionManager) tick(sess *liveSession) bool {
	sess.mu.Lock()
	if sess.state != domain.SessionActive {
		// 正在提交或已提交，计时不再往下走
		sess.mu.Unlock()
		return sess.state == domain.SessionSubmitted
	}
	if sess.remaining > 0 {
		sess.remaining--
	}
	expired := sess.remaining == 0
	sess.mu.Unlock()
	if expired {
		m.autoSubmit(sess)
		return true
	}
	return false
}

func (m *sessionManager) autoSubmit(sess *liveSession) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := m.submit(ctx, sess, false)
	if err != nil {
		// 失败回到 Active 冻结在 0 秒，评委还可以手动重交
		m.logger.Error("倒计时结束自动交卷失败",
			elog.FieldErr(err),
			elog.Int64("scheduleId", sess.scheduleId),
			elog.Int64("evaluatorUid", sess.evaluatorUid))
	}
}

func (m *sessionManager) Save(ctx context.Context, scheduleId, evaluatorUid int64,
	module string, scores map[string]int64, comment string) (domain.Session, error) {
	sess, ok := m.sessions.Load(sessionKey(scheduleId, evaluatorUid))
	if !ok {
		return domain.Session{}, ErrSessionNotFound
	}
	for key, score := range scores {
		if score < 0 || score > 10 || !domain.ModuleItem(module, key) {
			return domain.Session{}, ErrInvalidScore
		}
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state != domain.SessionActive {
		return domain.Session{}, ErrInvalidSessionState
	}
	target, ok := sess.responses[module]
	if !ok {
		// 不属于本轮次的模块
		return domain.Session{}, ErrInvalidScore
	}
	for key, score := range scores {
		target[key] = score
	}
	if comment != "" {
		sess.comments[module] = comment
	}
	return sess.snapshot(), nil
}

func (m *sessionManager) Submit(ctx context.Context, scheduleId, evaluatorUid int64) (domain.Session, error) {
	sess, ok := m.sessions.Load(sessionKey(scheduleId, evaluatorUid))
	if !ok {
		return domain.Session{}, ErrSessionNotFound
	}
	return m.submit(ctx, sess, true)
}

// submit Active -> Submitting -> Submitted。
// 落库失败回到 Active，剩余时间保持原样，不重启计时器
func (m *sessionManager) submit(ctx context.Context, sess *liveSession, complete bool) (domain.Session, error) {
	sess.mu.Lock()
	if sess.state != domain.SessionActive {
		snapshot := sess.snapshot()
		sess.mu.Unlock()
		if snapshot.State == domain.SessionSubmitted {
			return snapshot, ErrEvaluationExists
		}
		return snapshot, ErrInvalidSessionState
	}
	sess.state = domain.SessionSubmitting
	// 进入提交流程就停表。失败回 Active 时剩余时间保持冻结，
	// 计时器不会复活
	sess.stop()
	snapshot := sess.snapshot()
	sess.mu.Unlock()

	quantitative, qualitative, total, totalMax := domain.Score(
		snapshot.RoundType, snapshot.Responses, snapshot.Comments)
	_, err := m.evalSvc.Submit(ctx, domain.Evaluation{
		ScheduleId:           snapshot.ScheduleId,
		EvaluatorUid:         snapshot.EvaluatorUid,
		CandidateUid:         snapshot.CandidateUid,
		RoundType:            snapshot.RoundType,
		TimeRemainingSeconds: snapshot.RemainingSeconds,
		QuantitativeScores:   quantitative,
		QualitativeComments:  qualitative,
		TotalScore:           total,
		TotalMaxScore:        totalMax,
		IsComplete:           complete,
	})
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err != nil {
		sess.state = domain.SessionActive
		return sess.snapshot(), err
	}
	sess.state = domain.SessionSubmitted
	return sess.snapshot(), nil
}

func (m *sessionManager) Session(ctx context.Context, scheduleId, evaluatorUid int64) (domain.Session, error) {
	sess, ok := m.sessions.Load(sessionKey(scheduleId, evaluatorUid))
	if !ok {
		return domain.Session{}, ErrSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

func (m *sessionManager) Close(ctx context.Context, scheduleId, evaluatorUid int64) error {
	key := sessionKey(scheduleId, evaluatorUid)
	sess, ok := m.sessions.Load(key)
	if !ok {
		return nil
	}
	sess.stop()
	m.sessions.Delete(key)
	return nil
}
