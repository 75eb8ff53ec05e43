// Copyright 2024 vrecruit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/service"
)

const evaluationSubmittedEvents = "evaluation_submitted_events"

// EvaluationEvent 评价模块广播的事件，这里只关心候选人
type EvaluationEvent struct {
	ScheduleId   int64  `json:"scheduleId"`
	EvaluatorUid int64  `json:"evaluatorUid"`
	CandidateUid int64  `json:"candidateUid"`
	RoundType    string `json:"roundType"`
	IsComplete   bool   `json:"isComplete"`
}

// InvalidateConsumer 收到新评价就把该候选人的分析缓存打掉
type InvalidateConsumer struct {
	svc      service.AnalyticsService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewInvalidateConsumer(svc service.AnalyticsService, q mq.MQ) (*InvalidateConsumer, error) {
	groupID := "analytics"
	consumer, err := q.Consumer(evaluationSubmittedEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &InvalidateConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *InvalidateConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费评价提交事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *InvalidateConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt EvaluationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.svc.InvalidateCache(ctx, evt.CandidateUid)
	if err != nil {
		c.logger.Error("清理分析缓存失败",
			elog.FieldErr(err),
			elog.Int64("candidateUid", evt.CandidateUid))
	}
	return nil
}
