//go:build wireinject

package progress

import (
	"github.com/google/wire"
	"github.com/vrecruit/vrecruit/internal/candidate"
	"github.com/vrecruit/vrecruit/internal/progress/internal/service"
	"github.com/vrecruit/vrecruit/internal/progress/internal/web"
	"github.com/vrecruit/vrecruit/internal/schedule"
)

func InitModule(scheduleModule *schedule.Module, candidateModule *candidate.Module) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*schedule.Module), "Svc"),
		wire.FieldsOf(new(*candidate.Module), "Svc"),
		service.NewProgressService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
