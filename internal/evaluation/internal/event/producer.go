package event

import (
	"github.com/ecodeclub/mq-api"
	"github.com/vrecruit/vrecruit/internal/pkg/mqx"
)

type EvaluationEventProducer = mqx.Producer[EvaluationEvent]

func NewEvaluationEventProducer(q mq.MQ) (EvaluationEventProducer, error) {
	return mqx.NewGeneralProducer[EvaluationEvent](q, EvaluationEventName)
}
