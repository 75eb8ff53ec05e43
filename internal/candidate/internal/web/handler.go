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
	"github.com/gin-gonic/gin"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/errs"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/service"
)

var _ ginx.Handler = &Handler{}

// Handler 挂在业务服务器上，给教职工查候选人
type Handler struct {
	svc service.CandidateService
}

func NewHandler(svc service.CandidateService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	candidates := server.Group("/candidate")
	candidates.POST("/list", ginx.B[ListReq](h.List))
	candidates.POST("/detail", ginx.B[ProfileReq](h.Detail))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ps, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfileList(ps),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req ProfileReq) (ginx.Result, error) {
	p, err := h.svc.Profile(ctx, req.Uid)
	if errors.Is(err, service.ErrProfileNotFound) {
		return ginx.Result{
			Code: errs.ProfileNotFound.Code,
			Msg:  errs.ProfileNotFound.Msg,
		}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfileDetail(p),
	}, nil
}
