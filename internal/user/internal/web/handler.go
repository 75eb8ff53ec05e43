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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/vrecruit/vrecruit/internal/user/internal/domain"
	"github.com/vrecruit/vrecruit/internal/user/internal/errs"
	"github.com/vrecruit/vrecruit/internal/user/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/register", ginx.B[RegisterReq](h.Register))
	users.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
	users.POST("/list", ginx.BS[ListReq](h.List))
}

// Register 开放给教职工自助注册，候选人账号走录入流程
func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	role := domain.Role(req.Role)
	if !role.Valid() || role == domain.RoleCandidate {
		return ginx.Result{
			Code: errs.InvalidRole.Code,
			Msg:  errs.InvalidRole.Msg,
		}, nil
	}
	u, err := h.userSvc.Create(ctx, domain.User{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     role,
	}, req.Password)
	if errors.Is(err, service.ErrUserDuplicate) {
		return ginx.Result{
			Code: errs.UserDuplicate.Code,
			Msg:  errs.UserDuplicate.Msg,
		}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: u.Id,
	}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidUserOrPassword) {
		return ginx.Result{
			Code: errs.InvalidEmailOrPassword.Code,
			Msg:  errs.InvalidEmailOrPassword.Msg,
		}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 把角色写进 JWT，后续的权限校验全靠它
	_, err = session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			"role": string(u.Role),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newUser(u),
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newUser(u),
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:              sess.Claims().Uid,
		FullName:        req.FullName,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

// List 按角色查询用户，排期的时候要选候选人和考官
func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	// 候选人看不到其他用户
	if sess.Claims().Get("role").StringOrDefault("") == string(domain.RoleCandidate) {
		return forbiddenResult, nil
	}
	us, err := h.userSvc.ListByRole(ctx, domain.Role(req.Role), req.Offset, req.Limit)
	if errors.Is(err, service.ErrInvalidRole) {
		return ginx.Result{
			Code: errs.InvalidRole.Code,
			Msg:  errs.InvalidRole.Msg,
		}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newUserList(us),
	}, nil
}
