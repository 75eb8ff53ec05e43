//go:build wireinject

package evaluation

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/vrecruit/vrecruit/internal/candidate"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/event"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/repository"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/service"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/web"
	"github.com/vrecruit/vrecruit/internal/pkg/snowflake"
	"github.com/vrecruit/vrecruit/internal/schedule"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	gen *snowflake.AppSnowflake,
	scheduleModule *schedule.Module,
	candidateModule *candidate.Module) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewEvaluationRepository,
		event.NewEvaluationEventProducer,
		wire.Bind(new(snowflake.Generator), new(*snowflake.AppSnowflake)),
		wire.FieldsOf(new(*schedule.Module), "Svc"),
		wire.FieldsOf(new(*candidate.Module), "Svc"),
		service.NewEvaluationService,
		service.NewSessionManager,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
