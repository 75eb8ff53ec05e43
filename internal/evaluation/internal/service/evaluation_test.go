package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrecruit/vrecruit/internal/candidate"
	"github.com/vrecruit/vrecruit/internal/pkg/snowflake"
)

func TestEvaluationService_Verdict(t *testing.T) {
	t.Parallel()
	gen, err := snowflake.NewAppSnowflake(0)
	require.NoError(t, err)
	scheduleSvc := &fakeScheduleSvc{}
	candidateSvc := &fakeCandidateSvc{}
	svc := NewEvaluationService(newFakeEvaluationRepo(), gen, &fakeProducer{}, scheduleSvc, candidateSvc)

	warning, err := svc.Verdict(context.Background(), testScheduleId, "Recommended")
	require.NoError(t, err)
	assert.False(t, warning)
	assert.Equal(t, candidate.VerdictRecommended, candidateSvc.verdicts[testCandidateUid])
	assert.Equal(t, []int64{testScheduleId}, scheduleSvc.completed)

	_, err = svc.Verdict(context.Background(), testScheduleId, "Maybe")
	assert.ErrorIs(t, err, ErrInvalidVerdict)
}

func TestEvaluationService_VerdictPartialFailure(t *testing.T) {
	t.Parallel()
	gen, err := snowflake.NewAppSnowflake(0)
	require.NoError(t, err)
	scheduleSvc := &fakeScheduleSvc{completeErr: errors.New("状态流转失败")}
	candidateSvc := &fakeCandidateSvc{}
	svc := NewEvaluationService(newFakeEvaluationRepo(), gen, &fakeProducer{}, scheduleSvc, candidateSvc)

	// 结论写成功、状态转换失败：只告警，结论保留
	warning, err := svc.Verdict(context.Background(), testScheduleId, "Waitlist")
	require.NoError(t, err)
	assert.True(t, warning)
	assert.Equal(t, candidate.VerdictWaitlist, candidateSvc.verdicts[testCandidateUid])
}
