//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/vrecruit/vrecruit/internal/schedule"
	testioc "github.com/vrecruit/vrecruit/internal/test/ioc"
)

func InitModule() (*schedule.Module, error) {
	wire.Build(
		testioc.BaseSet,
		schedule.InitModule,
	)
	return new(schedule.Module), nil
}
