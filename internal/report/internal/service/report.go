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
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"html/template"

	"github.com/vrecruit/vrecruit/internal/analytics"
	"github.com/vrecruit/vrecruit/internal/pkg/pdf"
)

type ReportService interface {
	// PDF 渲染候选人全景报告，返回文件内容和下载名
	PDF(ctx context.Context, candidateUid int64) ([]byte, string, error)
	// CSV 同一份数据的表格版
	CSV(ctx context.Context, candidateUid int64) ([]byte, string, error)
}

type reportService struct {
	analyticsSvc analytics.AnalyticsService
	converter    pdf.Converter
	tmpl         *template.Template
}

func NewReportService(analyticsSvc analytics.AnalyticsService,
	converter pdf.Converter) (ReportService, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("解析报告模板失败: %w", err)
	}
	return &reportService{
		analyticsSvc: analyticsSvc,
		converter:    converter,
		tmpl:         tmpl,
	}, nil
}

func (svc *reportService) PDF(ctx context.Context, candidateUid int64) ([]byte, string, error) {
	r, err := svc.analyticsSvc.Report(ctx, candidateUid)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	err = svc.tmpl.Execute(&buf, reportData{
		Report:         r,
		Recommendation: displayRecommendation(r),
	})
	if err != nil {
		return nil, "", fmt.Errorf("渲染报告失败: %w", err)
	}
	data, err := svc.converter.ConvertHTMLToPDF(ctx, buf.String(),
		pdf.PaperLetter,
		pdf.MarginsNormal,
		pdf.WithTitle(fmt.Sprintf("VRecruitment Report %d", candidateUid)))
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("VRecruitment_Report_%d.pdf", candidateUid), nil
}

func (svc *reportService) CSV(ctx context.Context, candidateUid int64) ([]byte, string, error) {
	r, err := svc.analyticsSvc.Report(ctx, candidateUid)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	records := [][]string{
		{"V-Recruitment Grouped Report for", r.CandidateInfo.Name},
		{"Candidate ID", fmt.Sprintf("%d", candidateUid)},
		{"Overall Score", fmt.Sprintf("%d/%d", r.TotalScoreSum, r.TotalMaxScoreSum)},
		{"Final Recommendation", displayRecommendation(r)},
		{},
		{"Round", "Score", "Max Score", "Average Percentage"},
	}
	for _, round := range r.GroupedByRound {
		records = append(records, []string{
			round.Round,
			fmt.Sprintf("%d", round.Score),
			fmt.Sprintf("%d", round.MaxScore),
			fmt.Sprintf("%d%%", round.AvgScore),
		})
	}
	records = append(records,
		[]string{},
		[]string{"Detailed Section Scores/Comments"},
		[]string{"Section", "Score", "Max Score", "Comment"})
	for _, section := range r.SectionScores {
		records = append(records, []string{
			section.Section,
			fmt.Sprintf("%d", section.Score),
			fmt.Sprintf("%d", section.Max),
			section.Comment,
		})
	}
	if err := w.WriteAll(records); err != nil {
		return nil, "", err
	}
	w.Flush()
	return buf.Bytes(), fmt.Sprintf("VRecruitment_Grouped_Data_%d.csv", candidateUid), nil
}

// displayRecommendation 权威结论优先，没下结论才用推导档位
func displayRecommendation(r analytics.Report) string {
	if r.CandidateInfo.FinalVerdict != "" {
		return r.CandidateInfo.FinalVerdict
	}
	return r.Recommendation
}

type reportData struct {
	analytics.Report
	Recommendation string
}
