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

package analytics

import (
	"github.com/vrecruit/vrecruit/internal/analytics/internal/domain"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/event"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/service"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/web"
)

type Handler = web.Handler
type Report = domain.Report
type RoundScore = domain.RoundScore
type SectionScore = domain.SectionScore
type CandidateInfo = domain.CandidateInfo

type AnalyticsService = service.AnalyticsService
type Summarizer = service.Summarizer
type InvalidateConsumer = event.InvalidateConsumer

// NewLLMSummarizer 供 ioc 根据配置构造
var NewLLMSummarizer = service.NewLLMSummarizer

type Module struct {
	Hdl *Handler
	Svc AnalyticsService
	// Consumer 清理缓存的消费者，由 ioc 统一 Start
	Consumer *InvalidateConsumer
}
