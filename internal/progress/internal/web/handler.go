package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/vrecruit/vrecruit/internal/progress/internal/domain"
	"github.com/vrecruit/vrecruit/internal/progress/internal/errs"
	"github.com/vrecruit/vrecruit/internal/progress/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.ProgressService
}

func NewHandler(svc service.ProgressService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/progress/list", ginx.B[ProgressReq](h.List))
}

func (h *Handler) List(ctx *ginx.Context, req ProgressReq) (ginx.Result, error) {
	rounds, err := h.svc.Progress(ctx, req.CandidateUid)
	if err != nil {
		return ginx.Result{
			Code: errs.SystemError.Code,
			Msg:  errs.SystemError.Msg,
		}, err
	}
	return ginx.Result{
		Data: slice.Map(rounds, func(idx int, src domain.RoundProgress) RoundProgress {
			return RoundProgress{
				RoundType: src.RoundType,
				Status:    src.Status.Render(),
				Tag:       string(src.Status),
			}
		}),
	}, nil
}

type ProgressReq struct {
	CandidateUid int64 `json:"candidateUid"`
}

type RoundProgress struct {
	RoundType string `json:"roundType"`
	// Status 展示文案，next 已折叠成 scheduled
	Status string `json:"status"`
	// Tag 内部状态，方便前端做细分样式
	Tag string `json:"tag"`
}
