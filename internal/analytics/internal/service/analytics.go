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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/domain"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/repository/cache"
	"github.com/vrecruit/vrecruit/internal/candidate"
	"github.com/vrecruit/vrecruit/internal/evaluation"
)

const (
	// summaryPlaceholder 模型挂了就用占位文案，页面不能因此打不开
	summaryPlaceholder = "AI 总结暂不可用，请参考各轮评语。"
	noEvaluationsText  = "No completed evaluations found."
)

type AnalyticsService interface {
	// Report 候选人全景报告，带缓存
	Report(ctx context.Context, candidateUid int64) (domain.Report, error)
	// Summarize 汇总一组评语，失败降级为占位文案，永不报错
	Summarize(ctx context.Context, comments []string) string
	// InvalidateCache 评价提交事件的消费侧
	InvalidateCache(ctx context.Context, candidateUid int64) error
}

type analyticsService struct {
	evalSvc      evaluation.EvaluationService
	candidateSvc candidate.CandidateService
	cache        cache.ReportCache
	summarizer   Summarizer
	logger       *elog.Component
}

func NewAnalyticsService(evalSvc evaluation.EvaluationService,
	candidateSvc candidate.CandidateService,
	c cache.ReportCache,
	summarizer Summarizer) AnalyticsService {
	return &analyticsService{
		evalSvc:      evalSvc,
		candidateSvc: candidateSvc,
		cache:        c,
		summarizer:   summarizer,
		logger:       elog.DefaultLogger,
	}
}

func (svc *analyticsService) Report(ctx context.Context, candidateUid int64) (domain.Report, error) {
	r, err := svc.cache.Get(ctx, candidateUid)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, cache.ErrKeyNotExist) {
		svc.logger.Error("读取分析缓存失败",
			elog.FieldErr(err),
			elog.Int64("candidateUid", candidateUid))
	}
	r, err = svc.build(ctx, candidateUid)
	if err != nil {
		return domain.Report{}, err
	}
	if er := svc.cache.Set(ctx, candidateUid, r); er != nil {
		svc.logger.Error("写入分析缓存失败",
			elog.FieldErr(er),
			elog.Int64("candidateUid", candidateUid))
	}
	return r, nil
}

func (svc *analyticsService) build(ctx context.Context, candidateUid int64) (domain.Report, error) {
	es, err := svc.evalSvc.ListByCandidate(ctx, candidateUid, true)
	if err != nil {
		return domain.Report{}, err
	}
	records := slice.Map(es, func(idx int, src evaluation.Evaluation) domain.Record {
		quantitative := make(map[string]domain.ModuleScore, len(src.QuantitativeScores))
		for name, ms := range src.QuantitativeScores {
			quantitative[name] = domain.ModuleScore{Score: ms.Score, Max: ms.Max}
		}
		return domain.Record{
			RoundType:          src.RoundType,
			TotalScore:         src.TotalScore,
			TotalMaxScore:      src.TotalMaxScore,
			QuantitativeScores: quantitative,
			QualitativeComments: slice.Map(src.QualitativeComments,
				func(idx int, c evaluation.Comment) domain.Comment {
					return domain.Comment{Round: c.Round, Comment: c.Comment}
				}),
		}
	})
	r := domain.Fold(records)
	r.CandidateInfo = svc.candidateInfo(ctx, candidateUid)

	if len(records) == 0 {
		r.AISummary = noEvaluationsText
		return r, nil
	}
	comments := make([]string, 0, len(records))
	for _, rec := range records {
		for _, c := range rec.QualitativeComments {
			if c.Comment != "" {
				comments = append(comments, c.Comment)
			}
		}
	}
	r.AISummary = svc.Summarize(ctx, comments)
	return r, nil
}

func (svc *analyticsService) candidateInfo(ctx context.Context, candidateUid int64) domain.CandidateInfo {
	info := domain.CandidateInfo{Uid: candidateUid}
	p, err := svc.candidateSvc.Profile(ctx, candidateUid)
	if err != nil {
		// 档案缺失不影响分数折算
		if !errors.Is(err, candidate.ErrProfileNotFound) {
			svc.logger.Error("读取候选人档案失败",
				elog.FieldErr(err),
				elog.Int64("candidateUid", candidateUid))
		}
		return info
	}
	info.Name = p.FullName()
	info.Position = p.PositionAppliedFor
	info.FinalVerdict = string(p.FinalVerdict)
	return info
}

func (svc *analyticsService) Summarize(ctx context.Context, comments []string) string {
	if len(comments) == 0 {
		return "No qualitative data provided for summary generation."
	}
	summary, err := svc.summarizer.Summarize(ctx, comments)
	if err != nil {
		svc.logger.Error("生成 AI 总结失败", elog.FieldErr(err))
		return summaryPlaceholder
	}
	return summary
}

func (svc *analyticsService) InvalidateCache(ctx context.Context, candidateUid int64) error {
	return svc.cache.Delete(ctx, candidateUid)
}
