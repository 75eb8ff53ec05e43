package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTier(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		overall int64
		want    string
	}{
		{overall: 93, want: TierRecommended},
		{overall: 80, want: TierRecommended},
		{overall: 79, want: TierWaitlist},
		{overall: 60, want: TierWaitlist},
		{overall: 59, want: TierNotRecommended},
		{overall: 0, want: TierNotRecommended},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Tier(tc.overall))
	}
}

func TestFold(t *testing.T) {
	t.Parallel()
	records := []Record{
		{
			RoundType:     "Technical Round",
			TotalScore:    70,
			TotalMaxScore: 80,
			QuantitativeScores: map[string]ModuleScore{
				"Technical 1": {Score: 54, Max: 60},
				"Technical 2": {Score: 16, Max: 20},
			},
			QualitativeComments: []Comment{
				{Round: "Technical 1", Comment: "底子扎实"},
			},
		},
		{
			RoundType:     "Technical Round",
			TotalScore:    60,
			TotalMaxScore: 80,
			QuantitativeScores: map[string]ModuleScore{
				"Technical 1": {Score: 48, Max: 60},
				"Technical 2": {Score: 12, Max: 20},
			},
			QualitativeComments: []Comment{
				{Round: "Technical 1", Comment: "系统设计一般"},
			},
		},
		{
			RoundType:     "HR Round",
			TotalScore:    56,
			TotalMaxScore: 60,
			QuantitativeScores: map[string]ModuleScore{
				"HR Assessment": {Score: 56, Max: 60},
			},
		},
	}
	r := Fold(records)
	assert.Equal(t, 3, r.EvaluationCount)
	assert.Equal(t, int64(186), r.TotalScoreSum)
	assert.Equal(t, int64(220), r.TotalMaxScoreSum)
	// round(186/220*100) = 85
	assert.Equal(t, int64(85), r.OverallScore)
	assert.Equal(t, TierRecommended, r.Recommendation)

	require.Len(t, r.GroupedByRound, 2)
	assert.Equal(t, RoundScore{Round: "Technical Round", AvgScore: 81, Score: 130, MaxScore: 160}, r.GroupedByRound[0])
	assert.Equal(t, RoundScore{Round: "HR Round", AvgScore: 93, Score: 56, MaxScore: 60}, r.GroupedByRound[1])

	// 同模块多个评委的评语用竖线拼接
	require.Len(t, r.SectionScores, 3)
	tech1 := r.SectionScores[0]
	assert.Equal(t, "Technical 1", tech1.Section)
	assert.Equal(t, int64(102), tech1.Score)
	assert.Equal(t, int64(120), tech1.Max)
	assert.Equal(t, "底子扎实 | 系统设计一般", tech1.Comment)
	// 没有评语的模块给固定占位
	assert.Equal(t, "No specific qualitative comments.", r.SectionScores[1].Comment)
}

func TestFold_Empty(t *testing.T) {
	t.Parallel()
	r := Fold(nil)
	assert.Equal(t, int64(0), r.OverallScore)
	assert.Equal(t, 0, r.EvaluationCount)
	assert.Empty(t, r.GroupedByRound)
	// 没有数据时不给任何档位
	assert.Empty(t, r.Recommendation)
}

func TestFold_ZeroMaxRoundOmitted(t *testing.T) {
	t.Parallel()
	records := []Record{
		{RoundType: "Final Round", TotalScore: 0, TotalMaxScore: 0},
		{
			RoundType:     "HR Round",
			TotalScore:    186,
			TotalMaxScore: 200,
			QuantitativeScores: map[string]ModuleScore{
				"HR Assessment": {Score: 186, Max: 200},
			},
		},
	}
	r := Fold(records)
	// 分母为 0 的轮次不出现，也不拉低总分
	require.Len(t, r.GroupedByRound, 1)
	assert.Equal(t, "HR Round", r.GroupedByRound[0].Round)
	assert.Equal(t, int64(93), r.OverallScore)
	assert.Equal(t, TierRecommended, r.Recommendation)
}
