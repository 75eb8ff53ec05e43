package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrecruit/vrecruit/internal/analytics"
	"github.com/vrecruit/vrecruit/internal/pkg/pdf"
)

type fakeAnalyticsSvc struct {
	report analytics.Report
}

func (f *fakeAnalyticsSvc) Report(ctx context.Context, candidateUid int64) (analytics.Report, error) {
	return f.report, nil
}

func (f *fakeAnalyticsSvc) Summarize(ctx context.Context, comments []string) string {
	return ""
}

func (f *fakeAnalyticsSvc) InvalidateCache(ctx context.Context, candidateUid int64) error {
	return nil
}

type fakeConverter struct {
	html string
}

func (f *fakeConverter) ConvertHTMLToPDF(ctx context.Context, html string, opts ...pdf.Option) ([]byte, error) {
	f.html = html
	return []byte("%PDF-fake"), nil
}

func testReport() analytics.Report {
	return analytics.Report{
		CandidateInfo: analytics.CandidateInfo{
			Uid:      1001,
			Name:     "Zhang San",
			Position: "Backend Engineer",
		},
		Recommendation:   "Recommended",
		OverallScore:     85,
		TotalScoreSum:    186,
		TotalMaxScoreSum: 220,
		EvaluationCount:  3,
		GroupedByRound: []analytics.RoundScore{
			{Round: "Technical Round", AvgScore: 81, Score: 130, MaxScore: 160},
			{Round: "HR Round", AvgScore: 93, Score: 56, MaxScore: 60},
		},
		SectionScores: []analytics.SectionScore{
			{Section: "Technical 1", Score: 102, Max: 120, AvgScore: 85, Comment: "底子扎实 | 系统设计一般"},
			{Section: "HR Assessment", Score: 56, Max: 60, AvgScore: 93, Comment: "No specific qualitative comments."},
		},
		AISummary: "综合表现稳定。",
	}
}

func TestCSVLayout(t *testing.T) {
	t.Parallel()
	svc, err := NewReportService(&fakeAnalyticsSvc{report: testReport()}, &fakeConverter{})
	require.NoError(t, err)

	data, filename, err := svc.CSV(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, "VRecruitment_Grouped_Data_1001.csv", filename)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "V-Recruitment Grouped Report for,Zhang San", lines[0])
	assert.Equal(t, "Candidate ID,1001", lines[1])
	assert.Equal(t, "Overall Score,186/220", lines[2])
	assert.Equal(t, "Final Recommendation,Recommended", lines[3])
	assert.Equal(t, "Round,Score,Max Score,Average Percentage", lines[5])
	assert.Equal(t, "Technical Round,130,160,81%", lines[6])
	assert.Equal(t, "HR Round,56,60,93%", lines[7])
	assert.Equal(t, "Detailed Section Scores/Comments", lines[9])
	assert.Equal(t, "Section,Score,Max Score,Comment", lines[10])
	assert.Equal(t, "Technical 1,102,120,底子扎实 | 系统设计一般", lines[11])
	assert.Equal(t, "HR Assessment,56,60,No specific qualitative comments.", lines[12])
}

func TestCSVFinalVerdictWins(t *testing.T) {
	t.Parallel()
	r := testReport()
	r.CandidateInfo.FinalVerdict = "Selected"
	r.SectionScores = nil
	svc, err := NewReportService(&fakeAnalyticsSvc{report: r}, &fakeConverter{})
	require.NoError(t, err)

	data, _, err := svc.CSV(context.Background(), 1001)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Final Recommendation,Selected")
}

func TestPDFRendersTemplate(t *testing.T) {
	t.Parallel()
	conv := &fakeConverter{}
	svc, err := NewReportService(&fakeAnalyticsSvc{report: testReport()}, conv)
	require.NoError(t, err)

	data, filename, err := svc.PDF(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, "VRecruitment_Report_1001.pdf", filename)
	assert.Equal(t, []byte("%PDF-fake"), data)
	assert.Contains(t, conv.html, "Zhang San")
	assert.Contains(t, conv.html, "186/220")
	assert.Contains(t, conv.html, "Recommendation: Recommended")
	assert.Contains(t, conv.html, "Technical Round")
	assert.Contains(t, conv.html, "综合表现稳定。")
}
