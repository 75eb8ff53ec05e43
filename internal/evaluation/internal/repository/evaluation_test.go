package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/domain"
)

func TestEntityRoundTrip(t *testing.T) {
	t.Parallel()
	r := &evaluationRepository{}
	e := domain.Evaluation{
		Id:                   7001,
		ScheduleId:           8001,
		EvaluatorUid:         2001,
		CandidateUid:         1001,
		RoundType:            "Technical Round",
		SubmissionTime:       1735689600000,
		TimeRemainingSeconds: 120,
		QuantitativeScores: map[string]domain.ModuleScore{
			"Technical 1": {Score: 54, Max: 60},
			"Technical 2": {Score: 16, Max: 20},
		},
		QualitativeComments: []domain.Comment{
			{Round: "Technical 1", Comment: "底子扎实"},
		},
		TotalScore:    70,
		TotalMaxScore: 80,
		IsComplete:    true,
	}
	entity := r.toEntity(e)
	// JSON 列必须置为有效，否则落库就是 NULL
	assert.True(t, entity.QuantitativeScores.Valid)
	assert.True(t, entity.QualitativeComments.Valid)

	got := r.toDomain(entity)
	assert.Equal(t, e, got)
}
