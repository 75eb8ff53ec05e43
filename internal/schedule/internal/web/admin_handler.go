package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/service"
)

// AdminHandler 挂在 admin 服务器上的高危操作
type AdminHandler struct {
	svc service.ScheduleService
}

func NewAdminHandler(svc service.ScheduleService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	schedules := server.Group("/schedule")
	schedules.POST("/delete", ginx.B[IdReq](h.Delete))
}

// Delete 物理删除，只给管理后台用
func (h *AdminHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Id)
	if errors.Is(err, service.ErrScheduleNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
