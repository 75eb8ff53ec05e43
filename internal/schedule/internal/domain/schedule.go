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

package domain

import (
	"errors"
	"time"
)

type RoundType string

const (
	RoundHR        RoundType = "HR Round"
	RoundTechnical RoundType = "Technical Round"
	RoundClassroom RoundType = "Classroom Round"
	RoundFinal     RoundType = "Final Round"
)

// CanonicalRounds 流程展示用的固定轮次顺序
var CanonicalRounds = []RoundType{RoundHR, RoundTechnical, RoundClassroom, RoundFinal}

func (r RoundType) Valid() bool {
	switch r {
	case RoundHR, RoundTechnical, RoundClassroom, RoundFinal:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPendingApproval Status = "Pending Approval"
	StatusScheduled       Status = "Scheduled"
	StatusCompleted       Status = "Completed"
	StatusCancelled       Status = "Cancelled"
)

type Mode string

const (
	ModeOnline  Mode = "Online"
	ModeOffline Mode = "Offline"
)

var ErrInvalidDuration = errors.New("面试时长必须大于0")

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	dateTimeLayout = "2006-01-02 15:04"
)

// 迟到宽限：开始前 15 分钟即可进入
const earlyEntry = 15 * time.Minute

// 审批停留超过 12 小时仅做提示，不改状态
const approvalAdvisoryTTL = 12 * time.Hour

type Schedule struct {
	Id           int64
	CandidateUid int64
	RoundType    RoundType
	// InterviewDate 形如 2006-01-02
	InterviewDate string
	// StartTime/EndTime 形如 15:04
	StartTime       string
	EndTime         string
	DurationMinutes int64
	Mode            Mode
	MeetingLink     string
	Notes           string
	Status          Status
	EvaluatorUids   []int64
	CreatedBy       int64
	Ctime           int64
	Utime           int64
}

// StartAt 开始时刻，按服务器本地时区解释
func (s Schedule) StartAt() (time.Time, error) {
	return time.ParseInLocation(dateTimeLayout, s.InterviewDate+" "+s.StartTime, time.Local)
}

// CanStart 评委当前能否进入评分：已批准，且 now 落在
// [开始前15分钟, 开始时刻+时长] 的窗口里
func (s Schedule) CanStart(now time.Time) bool {
	if s.Status != StatusScheduled {
		return false
	}
	start, err := s.StartAt()
	if err != nil {
		return false
	}
	open := start.Add(-earlyEntry)
	closeAt := start.Add(time.Duration(s.DurationMinutes) * time.Minute)
	return !now.Before(open) && !now.After(closeAt)
}

// PendingExpired 待审批是否已超过提示时限。只影响展示
func (s Schedule) PendingExpired(now time.Time) bool {
	if s.Status != StatusPendingApproval {
		return false
	}
	return now.UnixMilli()-s.Ctime > approvalAdvisoryTTL.Milliseconds()
}

// ComputeDurationMinutes 由起止时间算出时长，非正数直接拒绝
func ComputeDurationMinutes(startTime, endTime string) (int64, error) {
	start, err := time.Parse(timeLayout, startTime)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse(timeLayout, endTime)
	if err != nil {
		return 0, err
	}
	minutes := int64(end.Sub(start).Minutes())
	if minutes <= 0 {
		return 0, ErrInvalidDuration
	}
	return minutes, nil
}
