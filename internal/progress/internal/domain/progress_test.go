package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		snapshots  []ScheduleSnapshot
		verdictSet bool
		want       []Status
	}{
		{
			name: "一张白纸",
			want: []Status{StatusPending, StatusPending, StatusPending, StatusPending},
		},
		{
			name: "HR完成带动技术轮",
			snapshots: []ScheduleSnapshot{
				{RoundType: "HR Round", Status: "Completed"},
			},
			want: []Status{StatusCompleted, StatusNext, StatusPending, StatusPending},
		},
		{
			name: "技术轮已排期",
			snapshots: []ScheduleSnapshot{
				{RoundType: "HR Round", Status: "Completed"},
				{RoundType: "Technical Round", Status: "Scheduled"},
			},
			want: []Status{StatusCompleted, StatusScheduled, StatusPending, StatusPending},
		},
		{
			name: "前三轮完成终面ready",
			snapshots: []ScheduleSnapshot{
				{RoundType: "HR Round", Status: "Completed"},
				{RoundType: "Technical Round", Status: "Completed"},
				{RoundType: "Classroom Round", Status: "Completed"},
			},
			want: []Status{StatusCompleted, StatusCompleted, StatusCompleted, StatusReady},
		},
		{
			name: "取消和待审批不算数",
			snapshots: []ScheduleSnapshot{
				{RoundType: "HR Round", Status: "Cancelled"},
				{RoundType: "Technical Round", Status: "Pending Approval"},
			},
			want: []Status{StatusPending, StatusPending, StatusPending, StatusPending},
		},
		{
			name: "结论一下终面即完成",
			snapshots: []ScheduleSnapshot{
				{RoundType: "HR Round", Status: "Completed"},
			},
			verdictSet: true,
			want:       []Status{StatusCompleted, StatusNext, StatusPending, StatusCompleted},
		},
		{
			name: "同轮多场取完成的",
			snapshots: []ScheduleSnapshot{
				{RoundType: "HR Round", Status: "Cancelled"},
				{RoundType: "HR Round", Status: "Completed"},
				{RoundType: "HR Round", Status: "Scheduled"},
			},
			want: []Status{StatusCompleted, StatusNext, StatusPending, StatusPending},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Derive(tc.snapshots, tc.verdictSet)
			statuses := make([]Status, 0, len(got))
			rounds := make([]string, 0, len(got))
			for _, rp := range got {
				statuses = append(statuses, rp.Status)
				rounds = append(rounds, rp.RoundType)
			}
			// 顺序恒定
			assert.Equal(t, []string{"HR Round", "Technical Round", "Classroom Round", "Final Round"}, rounds)
			assert.Equal(t, tc.want, statuses)
		})
	}
}

func TestStatus_Render(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "scheduled", StatusNext.Render())
	assert.Equal(t, "completed", StatusCompleted.Render())
	assert.Equal(t, "ready", StatusReady.Render())
}
