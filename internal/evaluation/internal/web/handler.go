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
	"github.com/gotomicro/ego/core/elog"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/domain"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/service"
	"github.com/vrecruit/vrecruit/internal/schedule"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc         service.EvaluationService
	sessions    service.SessionManager
	scheduleSvc schedule.ScheduleService
	logger      *elog.Component
}

func NewHandler(svc service.EvaluationService,
	sessions service.SessionManager,
	scheduleSvc schedule.ScheduleService) *Handler {
	return &Handler{
		svc:         svc,
		sessions:    sessions,
		scheduleSvc: scheduleSvc,
		logger:      elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	evaluations := server.Group("/evaluation")
	evaluations.POST("/start", ginx.BS[ScheduleIdReq](h.Start))
	evaluations.POST("/save", ginx.BS[SaveReq](h.Save))
	evaluations.POST("/submit", ginx.BS[ScheduleIdReq](h.Submit))
	evaluations.POST("/session", ginx.BS[ScheduleIdReq](h.Session))
	evaluations.POST("/close", ginx.BS[ScheduleIdReq](h.Close))
	evaluations.POST("/verdict", ginx.BS[VerdictReq](h.Verdict))
	evaluations.POST("/rubric", ginx.B[RubricReq](h.Rubric))
	evaluations.GET("/assignments", ginx.S(h.Assignments))
	evaluations.GET("/mine", ginx.S(h.Mine))
	evaluations.POST("/candidate", ginx.B[CandidateReq](h.ListByCandidate))
	evaluations.POST("/schedule", ginx.B[ScheduleIdReq](h.ListBySchedule))
}

// Start 进入评分页面，创建（或接上）会话并开始倒计时
func (h *Handler) Start(ctx *ginx.Context, req ScheduleIdReq, sess session.Session) (ginx.Result, error) {
	s, err := h.sessions.Start(ctx, req.ScheduleId, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrEvaluationExists):
		return evaluationExistsResult, nil
	case errors.Is(err, service.ErrVerdictOnly):
		return verdictOnlyResult, nil
	case errors.Is(err, service.ErrNotAssigned):
		return notAssignedResult, nil
	case errors.Is(err, service.ErrOutsideWindow):
		return outsideWindowResult, nil
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrNotFoundStatus):
		return invalidScheduleResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSession(s),
	}, nil
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	s, err := h.sessions.Save(ctx, req.ScheduleId, sess.Claims().Uid,
		req.Module, req.Scores, req.Comment)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return sessionNotFoundResult, nil
	case errors.Is(err, service.ErrInvalidScore):
		return invalidScoreResult, nil
	case errors.Is(err, service.ErrInvalidSessionState):
		return invalidStateResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSession(s),
	}, nil
}

// Submit 主动交卷，倒计时冻结后依然允许重试
func (h *Handler) Submit(ctx *ginx.Context, req ScheduleIdReq, sess session.Session) (ginx.Result, error) {
	s, err := h.sessions.Submit(ctx, req.ScheduleId, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return sessionNotFoundResult, nil
	case errors.Is(err, service.ErrEvaluationExists):
		return evaluationExistsResult, nil
	case errors.Is(err, service.ErrInvalidSessionState):
		return invalidStateResult, nil
	case err != nil:
		// 落库失败，会话回到 Active，前端提示后可以重交
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSession(s),
	}, nil
}

// Session 前端轮询用的会话快照
func (h *Handler) Session(ctx *ginx.Context, req ScheduleIdReq, sess session.Session) (ginx.Result, error) {
	s, err := h.sessions.Session(ctx, req.ScheduleId, sess.Claims().Uid)
	if errors.Is(err, service.ErrSessionNotFound) {
		return sessionNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSession(s),
	}, nil
}

func (h *Handler) Close(ctx *ginx.Context, req ScheduleIdReq, sess session.Session) (ginx.Result, error) {
	err := h.sessions.Close(ctx, req.ScheduleId, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

// Verdict 终面结论，只有 admin 和 principal 能下
func (h *Handler) Verdict(ctx *ginx.Context, req VerdictReq, sess session.Session) (ginx.Result, error) {
	role := sess.Claims().Get("role").StringOrDefault("")
	if role != "admin" && role != "principal" {
		return permissionDeniedResult, nil
	}
	warning, err := h.svc.Verdict(ctx, req.ScheduleId, req.Verdict)
	switch {
	case errors.Is(err, service.ErrInvalidVerdict):
		return invalidVerdictResult, nil
	case errors.Is(err, service.ErrNotFoundStatus):
		return invalidScheduleResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	if warning {
		return ginx.Result{
			Msg: "结论已保存，但排期状态更新失败",
		}, nil
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) Rubric(ctx *ginx.Context, req RubricReq) (ginx.Result, error) {
	return ginx.Result{
		Data: newRubric(domain.ModulesForRound(req.RoundType)),
	}, nil
}

// Assignments 评委名下的场次，带提交标记
func (h *Handler) Assignments(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	ss, err := h.scheduleSvc.ListByEvaluator(ctx, uid)
	if err != nil {
		return systemErrorResult, err
	}
	res := make([]Assignment, 0, len(ss))
	for _, s := range ss {
		submitted, err := h.svc.Submitted(ctx, s.Id, uid)
		if err != nil {
			return systemErrorResult, err
		}
		res = append(res, newAssignment(s, submitted))
	}
	return ginx.Result{
		Data: res,
	}, nil
}

// Mine 评委的历史评价
func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	es, err := h.svc.ListMine(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEvaluationList(es),
	}, nil
}

func (h *Handler) ListByCandidate(ctx *ginx.Context, req CandidateReq) (ginx.Result, error) {
	es, err := h.svc.ListByCandidate(ctx, req.CandidateUid, req.OnlyComplete)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEvaluationList(es),
	}, nil
}

func (h *Handler) ListBySchedule(ctx *ginx.Context, req ScheduleIdReq) (ginx.Result, error) {
	es, err := h.svc.ListBySchedule(ctx, req.ScheduleId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEvaluationList(es),
	}, nil
}
