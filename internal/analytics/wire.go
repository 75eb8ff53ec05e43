//go:build wireinject

package analytics

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/event"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/repository/cache"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/service"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/web"
	"github.com/vrecruit/vrecruit/internal/candidate"
	"github.com/vrecruit/vrecruit/internal/evaluation"
)

func InitModule(ec ecache.Cache,
	q mq.MQ,
	summarizer service.Summarizer,
	evaluationModule *evaluation.Module,
	candidateModule *candidate.Module) (*Module, error) {
	wire.Build(
		cache.NewReportECache,
		wire.FieldsOf(new(*evaluation.Module), "Svc"),
		wire.FieldsOf(new(*candidate.Module), "Svc"),
		service.NewAnalyticsService,
		event.NewInvalidateConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
