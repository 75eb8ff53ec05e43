//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/vrecruit/vrecruit/internal/candidate"
	"github.com/vrecruit/vrecruit/internal/evaluation"
	"github.com/vrecruit/vrecruit/internal/schedule"
	testioc "github.com/vrecruit/vrecruit/internal/test/ioc"
	"github.com/vrecruit/vrecruit/internal/user"
)

func InitModule() (*evaluation.Module, error) {
	wire.Build(
		testioc.BaseSet,
		user.InitModule,
		candidate.InitModule,
		schedule.InitModule,
		evaluation.InitModule,
	)
	return new(evaluation.Module), nil
}

func InitScheduleModule() (*schedule.Module, error) {
	wire.Build(
		testioc.BaseSet,
		schedule.InitModule,
	)
	return new(schedule.Module), nil
}
