package report

import (
	"github.com/vrecruit/vrecruit/internal/report/internal/service"
	"github.com/vrecruit/vrecruit/internal/report/internal/web"
)

type Handler = web.Handler

type ReportService = service.ReportService

type Module struct {
	Hdl *Handler
	Svc ReportService
}
