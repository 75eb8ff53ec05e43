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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/integration/startup"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/web"
	"github.com/vrecruit/vrecruit/internal/schedule"
	"github.com/vrecruit/vrecruit/internal/test"
	testioc "github.com/vrecruit/vrecruit/internal/test/ioc"
)

const (
	evaluatorUid = int64(2001)
	candidateUid = int64(1001)
)

type HandlerTestSuite struct {
	suite.Suite
	server      *egin.Component
	db          *egorm.Component
	scheduleSvc schedule.ScheduleService
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	scheduleModule, err := startup.InitScheduleModule()
	require.NoError(s.T(), err)
	s.scheduleSvc = scheduleModule.Svc
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  evaluatorUid,
			Data: map[string]string{"role": "professor"},
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `evaluations`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("DROP TABLE `schedules`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `evaluations`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `schedules`").Error
	require.NoError(s.T(), err)
}

// newSchedule 造一场当前时间窗口内、已批准的面试
func (s *HandlerTestSuite) newSchedule(roundType string) int64 {
	t := s.T()
	start := time.Now().Add(-5 * time.Minute)
	id, err := s.scheduleSvc.Create(context.Background(), schedule.Schedule{
		CandidateUid:  candidateUid,
		RoundType:     schedule.RoundType(roundType),
		InterviewDate: start.Format("2006-01-02"),
		StartTime:     start.Format("15:04"),
		EndTime:       start.Add(time.Hour).Format("15:04"),
		Mode:          "Online",
		EvaluatorUids: []int64{evaluatorUid},
		CreatedBy:     evaluatorUid,
	})
	require.NoError(t, err)
	require.NoError(t, s.scheduleSvc.Approve(context.Background(), id))
	return id
}

func (s *HandlerTestSuite) postSession(path string, body any) (int, web.Session) {
	t := s.T()
	httpReq, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Session]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan(t)
	return res.Code, res.Data
}

func (s *HandlerTestSuite) TestStartSaveSubmit() {
	t := s.T()
	id := s.newSchedule("Technical Round")

	code, sess := s.postSession("/evaluation/start", web.ScheduleIdReq{ScheduleId: id})
	require.Equal(t, 0, code)
	assert.Equal(t, "Active", sess.State)
	assert.Equal(t, candidateUid, sess.CandidateUid)
	// 60 分钟的场次从满额开始倒数
	assert.True(t, sess.RemainingSeconds > 3590 && sess.RemainingSeconds <= 3600)

	code, sess = s.postSession("/evaluation/save", web.SaveReq{
		ScheduleId: id,
		Module:     "Technical 1",
		Scores:     map[string]int64{"core_skills": 9, "algorithms": 8},
		Comment:    "底子扎实",
	})
	require.Equal(t, 0, code)
	assert.Equal(t, int64(9), sess.Responses["Technical 1"]["core_skills"])

	code, sess = s.postSession("/evaluation/submit", web.ScheduleIdReq{ScheduleId: id})
	require.Equal(t, 0, code)
	assert.Equal(t, "Submitted", sess.State)

	// 主动交卷记为完整提交
	var count int64
	err := s.db.Table("evaluations").
		Where("schedule_id = ? AND evaluator_uid = ? AND is_complete = ?", id, evaluatorUid, true).
		Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 提交过之后不能再进
	code, _ = s.postSession("/evaluation/start", web.ScheduleIdReq{ScheduleId: id})
	assert.Equal(t, 504002, code)
}

func (s *HandlerTestSuite) TestStartNotAssigned() {
	t := s.T()
	start := time.Now().Add(-5 * time.Minute)
	id, err := s.scheduleSvc.Create(context.Background(), schedule.Schedule{
		CandidateUid:  candidateUid,
		RoundType:     schedule.RoundTechnical,
		InterviewDate: start.Format("2006-01-02"),
		StartTime:     start.Format("15:04"),
		EndTime:       start.Add(time.Hour).Format("15:04"),
		Mode:          "Online",
		// 另一个评委的场次
		EvaluatorUids: []int64{9999},
		CreatedBy:     evaluatorUid,
	})
	require.NoError(t, err)
	require.NoError(t, s.scheduleSvc.Approve(context.Background(), id))

	code, _ := s.postSession("/evaluation/start", web.ScheduleIdReq{ScheduleId: id})
	assert.Equal(t, 504005, code)
}

func (s *HandlerTestSuite) TestStartPendingApproval() {
	t := s.T()
	start := time.Now().Add(-5 * time.Minute)
	id, err := s.scheduleSvc.Create(context.Background(), schedule.Schedule{
		CandidateUid:  candidateUid,
		RoundType:     schedule.RoundTechnical,
		InterviewDate: start.Format("2006-01-02"),
		StartTime:     start.Format("15:04"),
		EndTime:       start.Add(time.Hour).Format("15:04"),
		Mode:          "Online",
		EvaluatorUids: []int64{evaluatorUid},
		CreatedBy:     evaluatorUid,
	})
	require.NoError(t, err)

	// 未批准不能进
	code, _ := s.postSession("/evaluation/start", web.ScheduleIdReq{ScheduleId: id})
	assert.Equal(t, 504007, code)
}

func (s *HandlerTestSuite) TestVerdictOnlyRound() {
	t := s.T()
	id := s.newSchedule("Final Round")
	code, _ := s.postSession("/evaluation/start", web.ScheduleIdReq{ScheduleId: id})
	assert.Equal(t, 504011, code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
