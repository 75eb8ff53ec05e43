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
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/domain"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/errs"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.ScheduleService
}

func NewHandler(svc service.ScheduleService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	schedules := server.Group("/schedule")
	schedules.POST("/create", ginx.BS[CreateReq](h.Create))
	schedules.POST("/detail", ginx.B[IdReq](h.Detail))
	schedules.POST("/update", ginx.BS[UpdateReq](h.Update))
	schedules.POST("/approve", ginx.BS[IdReq](h.Approve))
	schedules.POST("/cancel", ginx.BS[IdReq](h.Cancel))
	schedules.POST("/pending", ginx.BS[ListReq](h.Pending))
	schedules.POST("/list", ginx.B[ListReq](h.List))
	schedules.POST("/candidate", ginx.B[CandidateReq](h.ListByCandidate))
	schedules.GET("/mine", ginx.S(h.Mine))
}

// Create 登录用户都可以提交排期，落库即待审批
func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Schedule{
		CandidateUid:  req.CandidateUid,
		RoundType:     domain.RoundType(req.RoundType),
		InterviewDate: req.InterviewDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Mode:          domain.Mode(req.Mode),
		MeetingLink:   req.MeetingLink,
		Notes:         req.Notes,
		EvaluatorUids: req.EvaluatorUids,
		CreatedBy:     sess.Claims().Uid,
	})
	switch {
	case errors.Is(err, service.ErrInvalidSchedule):
		return ginx.Result{
			Code: errs.InvalidSchedule.Code,
			Msg:  errs.InvalidSchedule.Msg,
		}, nil
	case errors.Is(err, service.ErrInvalidDuration):
		return ginx.Result{
			Code: errs.InvalidDuration.Code,
			Msg:  errs.InvalidDuration.Msg,
		}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	s, err := h.svc.Detail(ctx, req.Id)
	if errors.Is(err, service.ErrScheduleNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSchedule(s),
	}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateReq, sess session.Session) (ginx.Result, error) {
	if !isApprover(sess) {
		return permissionDeniedResult, nil
	}
	err := h.svc.Update(ctx, domain.Schedule{
		Id:            req.Id,
		CandidateUid:  req.CandidateUid,
		RoundType:     domain.RoundType(req.RoundType),
		InterviewDate: req.InterviewDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Mode:          domain.Mode(req.Mode),
		MeetingLink:   req.MeetingLink,
		Notes:         req.Notes,
		EvaluatorUids: req.EvaluatorUids,
	})
	switch {
	case errors.Is(err, service.ErrInvalidSchedule):
		return ginx.Result{
			Code: errs.InvalidSchedule.Code,
			Msg:  errs.InvalidSchedule.Msg,
		}, nil
	case errors.Is(err, service.ErrInvalidDuration):
		return ginx.Result{
			Code: errs.InvalidDuration.Code,
			Msg:  errs.InvalidDuration.Msg,
		}, nil
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, nil
	case errors.Is(err, service.ErrScheduleNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) Approve(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	if !isApprover(sess) {
		return permissionDeniedResult, nil
	}
	err := h.svc.Approve(ctx, req.Id)
	if errors.Is(err, service.ErrInvalidStatus) {
		return invalidStatusResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	if !isApprover(sess) {
		return permissionDeniedResult, nil
	}
	err := h.svc.Cancel(ctx, req.Id)
	if errors.Is(err, service.ErrInvalidStatus) {
		return invalidStatusResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

// Pending 待审批列表，超过 12 小时的标注 expired
func (h *Handler) Pending(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	if !isApprover(sess) {
		return permissionDeniedResult, nil
	}
	ss, err := h.svc.PendingList(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	now := time.Now()
	vos := make([]Schedule, 0, len(ss))
	for _, s := range ss {
		vo := newSchedule(s)
		vo.Expired = s.PendingExpired(now)
		vos = append(vos, vo)
	}
	return ginx.Result{
		Data: vos,
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ss, err := h.svc.ActiveList(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newScheduleList(ss),
	}, nil
}

func (h *Handler) ListByCandidate(ctx *ginx.Context, req CandidateReq) (ginx.Result, error) {
	ss, err := h.svc.ListByCandidate(ctx, req.CandidateUid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newScheduleList(ss),
	}, nil
}

// Mine 当前登录评委名下的场次
func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ss, err := h.svc.ListByEvaluator(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newScheduleList(ss),
	}, nil
}

func isApprover(sess session.Session) bool {
	role := sess.Claims().Get("role").StringOrDefault("")
	return role == "admin" || role == "principal"
}
