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

package evaluation

import (
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/domain"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/service"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/web"
)

type Handler = web.Handler
type Evaluation = domain.Evaluation
type ModuleScore = domain.ModuleScore
type Comment = domain.Comment
type RubricModule = domain.RubricModule

type EvaluationService = service.EvaluationService
type SessionManager = service.SessionManager

// ModulesForRound 其他模块（分析、报表）也需要知道轮次结构
var ModulesForRound = domain.ModulesForRound

type Module struct {
	Hdl      *Handler
	Svc      EvaluationService
	Sessions SessionManager
}
