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
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/integration/startup"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/web"
	"github.com/vrecruit/vrecruit/internal/test"
	testioc "github.com/vrecruit/vrecruit/internal/test/ioc"
)

const uid = int64(2051)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"role": "principal"},
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `schedules`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `schedules`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) create(req web.CreateReq) int64 {
	httpReq, err := http.NewRequest(http.MethodPost,
		"/schedule/create", iox.NewJSONReader(req))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan(s.T()).Data
}

func (s *HandlerTestSuite) post(path string, body any, code int) {
	httpReq, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	require.Equal(s.T(), code, recorder.MustScan(s.T()).Code)
}

func (s *HandlerTestSuite) TestCreateAndApprove() {
	t := s.T()
	id := s.create(web.CreateReq{
		CandidateUid:  1001,
		RoundType:     "Technical Round",
		InterviewDate: "2026-03-10",
		StartTime:     "10:00",
		EndTime:       "11:00",
		Mode:          "Online",
		EvaluatorUids: []int64{uid},
	})
	assert.True(t, id > 0)

	// 新建进入待审批列表
	httpReq, err := http.NewRequest(http.MethodPost,
		"/schedule/pending", iox.NewJSONReader(web.ListReq{Limit: 10}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[[]web.Schedule]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, http.StatusOK, recorder.Code)
	pending := recorder.MustScan(t).Data
	require.Len(t, pending, 1)
	assert.Equal(t, "Pending Approval", pending[0].Status)
	assert.Equal(t, int64(60), pending[0].DurationMinutes)
	assert.False(t, pending[0].Expired)

	s.post("/schedule/approve", web.IdReq{Id: id}, 0)
	// 重复批准会被状态机拒绝
	s.post("/schedule/approve", web.IdReq{Id: id}, 503005)

	// 批准后出现在评委名下
	httpReq, err = http.NewRequest(http.MethodGet, "/schedule/mine", nil)
	require.NoError(t, err)
	mineRecorder := test.NewJSONResponseRecorder[[]web.Schedule]()
	s.server.ServeHTTP(mineRecorder, httpReq)
	require.Equal(t, http.StatusOK, mineRecorder.Code)
	mine := mineRecorder.MustScan(t).Data
	require.Len(t, mine, 1)
	assert.Equal(t, "Scheduled", mine[0].Status)
}

func (s *HandlerTestSuite) TestCancelAndDelete() {
	id := s.create(web.CreateReq{
		CandidateUid:  1002,
		RoundType:     "HR Round",
		InterviewDate: "2026-03-11",
		StartTime:     "14:00",
		EndTime:       "14:30",
		Mode:          "Offline",
		EvaluatorUids: []int64{uid},
	})
	s.post("/schedule/cancel", web.IdReq{Id: id}, 0)
	// 已取消的不能再取消
	s.post("/schedule/cancel", web.IdReq{Id: id}, 503005)
	s.post("/schedule/delete", web.IdReq{Id: id}, 0)
	s.post("/schedule/detail", web.IdReq{Id: id}, 503004)
}

func (s *HandlerTestSuite) TestCreateInvalidDuration() {
	req := web.CreateReq{
		CandidateUid:  1003,
		RoundType:     "Classroom Round",
		InterviewDate: "2026-03-12",
		StartTime:     "10:00",
		EndTime:       "09:00",
		Mode:          "Online",
		EvaluatorUids: []int64{uid},
	}
	s.post("/schedule/create", req, 503003)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
