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
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vrecruit/vrecruit/internal/test"
	testioc "github.com/vrecruit/vrecruit/internal/test/ioc"
	"github.com/vrecruit/vrecruit/internal/user/internal/integration/startup"
	"github.com/vrecruit/vrecruit/internal/user/internal/web"
)

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
	module.Hdl.PublicRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) postCode(path string, body any) int {
	t := s.T()
	httpReq, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan(t).Code
}

func (s *HandlerTestSuite) login(req web.LoginReq) (int, web.User) {
	t := s.T()
	httpReq, err := http.NewRequest(http.MethodPost,
		"/users/login", iox.NewJSONReader(req))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.User]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan(t)
	return res.Code, res.Data
}

func (s *HandlerTestSuite) TestRegisterAndLogin() {
	t := s.T()
	code := s.postCode("/users/register", web.RegisterReq{
		Email:    "prof@vrecruit.cn",
		Password: "hello#world123",
		FullName: "王教授",
		Role:     "professor",
	})
	require.Equal(t, 0, code)

	// 重复注册
	code = s.postCode("/users/register", web.RegisterReq{
		Email:    "prof@vrecruit.cn",
		Password: "hello#world123",
		FullName: "王教授",
		Role:     "professor",
	})
	assert.Equal(t, 501002, code)

	// 候选人账号只能走录入流程
	code = s.postCode("/users/register", web.RegisterReq{
		Email:    "c@vrecruit.cn",
		Password: "hello#world123",
		FullName: "张三",
		Role:     "candidate",
	})
	assert.Equal(t, 501004, code)

	// 密码错误
	code = s.postCode("/users/login", web.LoginReq{
		Email:    "prof@vrecruit.cn",
		Password: "wrong-password",
	})
	assert.Equal(t, 501003, code)

	code, u := s.login(web.LoginReq{
		Email:    "prof@vrecruit.cn",
		Password: "hello#world123",
	})
	require.Equal(t, 0, code)
	assert.Equal(t, "professor", u.Role)
	assert.NotEmpty(t, u.SN)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
