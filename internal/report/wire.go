//go:build wireinject

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

package report

import (
	"github.com/google/wire"
	"github.com/vrecruit/vrecruit/internal/analytics"
	"github.com/vrecruit/vrecruit/internal/pkg/pdf"
	"github.com/vrecruit/vrecruit/internal/report/internal/service"
	"github.com/vrecruit/vrecruit/internal/report/internal/web"
)

func InitModule(converter pdf.Converter, analyticsModule *analytics.Module) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*analytics.Module), "Svc"),
		service.NewReportService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
