package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/errs"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/service"
)

// AdminHandler 挂在 admin 服务器上，录入候选人
type AdminHandler struct {
	svc service.CandidateService
}

func NewAdminHandler(svc service.CandidateService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	candidates := server.Group("/candidate")
	candidates.POST("/add", ginx.B[AddReq](h.Add))
}

func (h *AdminHandler) Add(ctx *ginx.Context, req AddReq) (ginx.Result, error) {
	uid, err := h.svc.Add(ctx, req.toDomain())
	if errors.Is(err, service.ErrNameRequired) {
		return ginx.Result{
			Code: errs.NameRequired.Code,
			Msg:  errs.NameRequired.Msg,
		}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: uid,
	}, nil
}
