package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModulesForRound(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		round string
		want  []string
	}{
		{round: "Classroom Round", want: []string{ModuleAppearance, ModuleCommunication, ModulePsychometric}},
		{round: "HR Round", want: []string{ModuleHRAssessment}},
		{round: "Technical Round", want: []string{ModuleTechnical1, ModuleTechnical2}},
		{round: "Final Round", want: []string{ModuleSummary}},
	}
	for _, tc := range testCases {
		modules := ModulesForRound(tc.round)
		names := make([]string, 0, len(modules))
		for _, m := range modules {
			names = append(names, m.Name)
		}
		assert.Equal(t, tc.want, names, tc.round)
	}
	assert.Empty(t, ModulesForRound("Coffee Round"))
}

func TestScore_TechnicalRound(t *testing.T) {
	t.Parallel()
	responses := InitialResponses("Technical Round")
	require.Len(t, responses[ModuleTechnical1], 6)
	require.Len(t, responses[ModuleTechnical2], 2)

	// Technical 1 六项各 9 分，Technical 2 两项各 8 分
	for key := range responses[ModuleTechnical1] {
		responses[ModuleTechnical1][key] = 9
	}
	for key := range responses[ModuleTechnical2] {
		responses[ModuleTechnical2][key] = 8
	}
	comments := map[string]string{
		ModuleTechnical1: "扎实",
	}

	quantitative, qualitative, total, totalMax := Score("Technical Round", responses, comments)
	assert.Equal(t, ModuleScore{Score: 54, Max: 60}, quantitative[ModuleTechnical1])
	assert.Equal(t, ModuleScore{Score: 16, Max: 20}, quantitative[ModuleTechnical2])
	assert.Equal(t, int64(70), total)
	assert.Equal(t, int64(80), totalMax)
	require.Len(t, qualitative, 1)
	assert.Equal(t, Comment{Round: ModuleTechnical1, Comment: "扎实"}, qualitative[0])
}

func TestScore_UnansweredItemsExcluded(t *testing.T) {
	t.Parallel()
	// 只记录了两项，分母也只算这两项
	responses := map[string]map[string]int64{
		ModuleHRAssessment: {
			"background":   7,
			"cultural_fit": 5,
		},
	}
	quantitative, _, total, totalMax := Score("HR Round", responses, nil)
	assert.Equal(t, ModuleScore{Score: 12, Max: 20}, quantitative[ModuleHRAssessment])
	assert.Equal(t, int64(12), total)
	assert.Equal(t, int64(20), totalMax)
}

func TestScore_FinalRoundHasNoModules(t *testing.T) {
	t.Parallel()
	// Summary 没有评分项，不进总分
	quantitative, qualitative, total, totalMax := Score("Final Round",
		InitialResponses("Final Round"), map[string]string{ModuleSummary: "综合不错"})
	assert.Empty(t, quantitative)
	assert.Equal(t, int64(0), total)
	assert.Equal(t, int64(0), totalMax)
	// 评语照收
	require.Len(t, qualitative, 1)
}

func TestInitialResponses(t *testing.T) {
	t.Parallel()
	responses := InitialResponses("Classroom Round")
	require.Len(t, responses, 3)
	for _, scores := range responses {
		for _, s := range scores {
			assert.Equal(t, int64(0), s)
		}
	}
	// 全 0 也要把满分算全
	_, _, total, totalMax := Score("Classroom Round", responses, nil)
	assert.Equal(t, int64(0), total)
	assert.Equal(t, int64(150), totalMax)
}

func TestModuleItem(t *testing.T) {
	t.Parallel()
	assert.True(t, ModuleItem(ModuleTechnical2, "cloud"))
	assert.False(t, ModuleItem(ModuleTechnical2, "verbal"))
	assert.False(t, ModuleItem("Nope", "cloud"))
}
