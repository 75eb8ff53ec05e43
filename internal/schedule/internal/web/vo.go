package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/vrecruit/vrecruit/internal/schedule/internal/domain"
)

type CreateReq struct {
	CandidateUid  int64   `json:"candidateUid"`
	RoundType     string  `json:"roundType"`
	InterviewDate string  `json:"interviewDate"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Mode          string  `json:"mode"`
	MeetingLink   string  `json:"meetingLink"`
	Notes         string  `json:"notes"`
	EvaluatorUids []int64 `json:"evaluatorUids"`
}

type UpdateReq struct {
	Id int64 `json:"id"`
	CreateReq
}

type IdReq struct {
	Id int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type CandidateReq struct {
	CandidateUid int64 `json:"candidateUid"`
}

type Schedule struct {
	Id              int64   `json:"id"`
	CandidateUid    int64   `json:"candidateUid"`
	RoundType       string  `json:"roundType"`
	InterviewDate   string  `json:"interviewDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int64   `json:"durationMinutes"`
	Mode            string  `json:"mode"`
	MeetingLink     string  `json:"meetingLink"`
	Notes           string  `json:"notes"`
	Status          string  `json:"status"`
	EvaluatorUids   []int64 `json:"evaluatorUids"`
	CreatedBy       int64   `json:"createdBy"`
	Ctime           int64   `json:"ctime"`
	// Expired 待审批停留超过提示时限，仅用于展示
	Expired bool `json:"expired"`
}

func newSchedule(s domain.Schedule) Schedule {
	return Schedule{
		Id:              s.Id,
		CandidateUid:    s.CandidateUid,
		RoundType:       string(s.RoundType),
		InterviewDate:   s.InterviewDate,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		Mode:            string(s.Mode),
		MeetingLink:     s.MeetingLink,
		Notes:           s.Notes,
		Status:          string(s.Status),
		EvaluatorUids:   s.EvaluatorUids,
		CreatedBy:       s.CreatedBy,
		Ctime:           s.Ctime,
	}
}

func newScheduleList(ss []domain.Schedule) []Schedule {
	return slice.Map(ss, func(idx int, src domain.Schedule) Schedule {
		return newSchedule(src)
	})
}
