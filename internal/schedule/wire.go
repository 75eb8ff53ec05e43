//go:build wireinject

package schedule

import (
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/vrecruit/vrecruit/internal/pkg/snowflake"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/job"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/repository"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/service"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/web"
)

func InitModule(db *egorm.Component, gen *snowflake.AppSnowflake) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewScheduleRepository,
		wire.Bind(new(snowflake.Generator), new(*snowflake.AppSnowflake)),
		service.NewScheduleService,
		web.NewHandler,
		web.NewAdminHandler,
		job.NewExpiredApprovalJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
