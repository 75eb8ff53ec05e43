package progress

import (
	"github.com/vrecruit/vrecruit/internal/progress/internal/domain"
	"github.com/vrecruit/vrecruit/internal/progress/internal/service"
	"github.com/vrecruit/vrecruit/internal/progress/internal/web"
)

type Handler = web.Handler
type RoundProgress = domain.RoundProgress
type Status = domain.Status

type ProgressService = service.ProgressService

type Module struct {
	Hdl *Handler
	Svc ProgressService
}
