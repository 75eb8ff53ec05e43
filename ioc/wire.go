//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/vrecruit/vrecruit/internal/analytics"
	"github.com/vrecruit/vrecruit/internal/candidate"
	"github.com/vrecruit/vrecruit/internal/evaluation"
	"github.com/vrecruit/vrecruit/internal/progress"
	"github.com/vrecruit/vrecruit/internal/report"
	"github.com/vrecruit/vrecruit/internal/schedule"
	"github.com/vrecruit/vrecruit/internal/user"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitSnowflake)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		InitSummarizer,
		InitPDFConverter,
		InitCosHandler,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		candidate.InitModule,
		wire.FieldsOf(new(*candidate.Module), "Hdl", "AdminHdl"),
		schedule.InitModule,
		wire.FieldsOf(new(*schedule.Module), "Hdl", "AdminHdl", "ExpiredJob"),
		evaluation.InitModule,
		wire.FieldsOf(new(*evaluation.Module), "Hdl"),
		analytics.InitModule,
		wire.FieldsOf(new(*analytics.Module), "Hdl"),
		progress.InitModule,
		wire.FieldsOf(new(*progress.Module), "Hdl"),
		report.InitModule,
		wire.FieldsOf(new(*report.Module), "Hdl"),
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers)
	return new(App), nil
}
