package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDurationMinutes(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		start   string
		end     string
		want    int64
		wantErr error
	}{
		{
			name:  "正常区间",
			start: "10:00",
			end:   "10:45",
			want:  45,
		},
		{
			name:  "跨小时",
			start: "09:30",
			end:   "11:00",
			want:  90,
		},
		{
			name:    "起止相同",
			start:   "10:00",
			end:     "10:00",
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "结束早于开始",
			start:   "14:00",
			end:     "13:00",
			wantErr: ErrInvalidDuration,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ComputeDurationMinutes(tc.start, tc.end)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSchedule_CanStart(t *testing.T) {
	t.Parallel()
	s := Schedule{
		RoundType:       RoundTechnical,
		InterviewDate:   "2026-03-10",
		StartTime:       "10:00",
		EndTime:         "11:00",
		DurationMinutes: 60,
		Status:          StatusScheduled,
	}
	start, err := s.StartAt()
	require.NoError(t, err)

	testCases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{
			name: "提前20分钟还进不来",
			now:  start.Add(-20 * time.Minute),
			want: false,
		},
		{
			name: "提前15分钟刚好开门",
			now:  start.Add(-15 * time.Minute),
			want: true,
		},
		{
			name: "提前10分钟",
			now:  start.Add(-10 * time.Minute),
			want: true,
		},
		{
			name: "进行中",
			now:  start.Add(30 * time.Minute),
			want: true,
		},
		{
			name: "刚好结束时刻",
			now:  start.Add(60 * time.Minute),
			want: true,
		},
		{
			name: "结束后1分钟",
			now:  start.Add(61 * time.Minute),
			want: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, s.CanStart(tc.now))
		})
	}
}

func TestSchedule_CanStart_StatusGate(t *testing.T) {
	t.Parallel()
	s := Schedule{
		InterviewDate:   "2026-03-10",
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          StatusPendingApproval,
	}
	start, err := s.StartAt()
	require.NoError(t, err)
	// 没批准，时间窗口内也不能进
	assert.False(t, s.CanStart(start))
}

func TestSchedule_PendingExpired(t *testing.T) {
	t.Parallel()
	now := time.Now()
	s := Schedule{
		Status: StatusPendingApproval,
		Ctime:  now.Add(-13 * time.Hour).UnixMilli(),
	}
	assert.True(t, s.PendingExpired(now))

	s.Ctime = now.Add(-11 * time.Hour).UnixMilli()
	assert.False(t, s.PendingExpired(now))

	// 已批准的不参与过期提示
	s.Status = StatusScheduled
	s.Ctime = now.Add(-48 * time.Hour).UnixMilli()
	assert.False(t, s.PendingExpired(now))
}
