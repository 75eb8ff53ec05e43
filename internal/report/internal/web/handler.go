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
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/vrecruit/vrecruit/internal/report/internal/errs"
	"github.com/vrecruit/vrecruit/internal/report/internal/service"
)

// Handler 文件下载不走统一的 JSON envelope，直接用 gin 原生接口
type Handler struct {
	svc    service.ReportService
	logger *elog.Component
}

func NewHandler(svc service.ReportService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	reports := server.Group("/report")
	reports.GET("/pdf", h.PDF)
	reports.GET("/csv", h.CSV)
}

func (h *Handler) PDF(ctx *gin.Context) {
	h.download(ctx, "application/pdf", h.svc.PDF)
}

func (h *Handler) CSV(ctx *gin.Context) {
	h.download(ctx, "text/csv", h.svc.CSV)
}

func (h *Handler) download(ctx *gin.Context, contentType string,
	generate func(ctx0 context.Context, candidateUid int64) ([]byte, string, error)) {
	uid, err := strconv.ParseInt(ctx.Query("candidateUid"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "candidateUid 不合法"})
		return
	}
	data, filename, err := generate(ctx.Request.Context(), uid)
	if err != nil {
		h.logger.Error("生成报告失败",
			elog.FieldErr(err),
			elog.Int64("candidateUid", uid))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"code": errs.SystemError.Code,
			"msg":  errs.SystemError.Msg,
		})
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, contentType, data)
}
