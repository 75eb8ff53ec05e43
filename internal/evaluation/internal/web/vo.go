package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/vrecruit/vrecruit/internal/evaluation/internal/domain"
	"github.com/vrecruit/vrecruit/internal/schedule"
)

type ScheduleIdReq struct {
	ScheduleId int64 `json:"scheduleId"`
}

type SaveReq struct {
	ScheduleId int64  `json:"scheduleId"`
	Module     string `json:"module"`
	// Scores: 评分项 key -> 0~10
	Scores  map[string]int64 `json:"scores"`
	Comment string           `json:"comment"`
}

type VerdictReq struct {
	ScheduleId int64  `json:"scheduleId"`
	Verdict    string `json:"verdict"`
}

type RubricReq struct {
	RoundType string `json:"roundType"`
}

type CandidateReq struct {
	CandidateUid int64 `json:"candidateUid"`
	OnlyComplete bool  `json:"onlyComplete"`
}

type Session struct {
	ScheduleId       int64                       `json:"scheduleId"`
	CandidateUid     int64                       `json:"candidateUid"`
	RoundType        string                      `json:"roundType"`
	State            string                      `json:"state"`
	RemainingSeconds int64                       `json:"remainingSeconds"`
	Responses        map[string]map[string]int64 `json:"responses"`
	Comments         map[string]string           `json:"comments"`
}

func newSession(s domain.Session) Session {
	return Session{
		ScheduleId:       s.ScheduleId,
		CandidateUid:     s.CandidateUid,
		RoundType:        s.RoundType,
		State:            string(s.State),
		RemainingSeconds: s.RemainingSeconds,
		Responses:        s.Responses,
		Comments:         s.Comments,
	}
}

type ModuleScore struct {
	Score int64 `json:"score"`
	Max   int64 `json:"max"`
}

type Comment struct {
	Round   string `json:"round"`
	Comment string `json:"comment"`
}

type Evaluation struct {
	Id                   int64                  `json:"id"`
	ScheduleId           int64                  `json:"scheduleId"`
	EvaluatorUid         int64                  `json:"evaluatorUid"`
	CandidateUid         int64                  `json:"candidateUid"`
	RoundType            string                 `json:"roundType"`
	SubmissionTime       int64                  `json:"submissionTime"`
	TimeRemainingSeconds int64                  `json:"timeRemainingSeconds"`
	QuantitativeScores   map[string]ModuleScore `json:"quantitativeScores"`
	QualitativeComments  []Comment              `json:"qualitativeComments"`
	TotalScore           int64                  `json:"totalScore"`
	TotalMaxScore        int64                  `json:"totalMaxScore"`
	IsComplete           bool                   `json:"isComplete"`
}

func newEvaluation(e domain.Evaluation) Evaluation {
	quantitative := make(map[string]ModuleScore, len(e.QuantitativeScores))
	for name, ms := range e.QuantitativeScores {
		quantitative[name] = ModuleScore{Score: ms.Score, Max: ms.Max}
	}
	return Evaluation{
		Id:                   e.Id,
		ScheduleId:           e.ScheduleId,
		EvaluatorUid:         e.EvaluatorUid,
		CandidateUid:         e.CandidateUid,
		RoundType:            e.RoundType,
		SubmissionTime:       e.SubmissionTime,
		TimeRemainingSeconds: e.TimeRemainingSeconds,
		QuantitativeScores:   quantitative,
		QualitativeComments: slice.Map(e.QualitativeComments, func(idx int, src domain.Comment) Comment {
			return Comment{Round: src.Round, Comment: src.Comment}
		}),
		TotalScore:    e.TotalScore,
		TotalMaxScore: e.TotalMaxScore,
		IsComplete:    e.IsComplete,
	}
}

func newEvaluationList(es []domain.Evaluation) []Evaluation {
	return slice.Map(es, func(idx int, src domain.Evaluation) Evaluation {
		return newEvaluation(src)
	})
}

type RubricItem struct {
	Key    string `json:"key"`
	Prompt string `json:"prompt"`
}

type RubricModule struct {
	Name  string       `json:"name"`
	Items []RubricItem `json:"items"`
}

func newRubric(modules []domain.RubricModule) []RubricModule {
	return slice.Map(modules, func(idx int, src domain.RubricModule) RubricModule {
		return RubricModule{
			Name: src.Name,
			Items: slice.Map(src.Items, func(idx int, item domain.RubricItem) RubricItem {
				return RubricItem{Key: item.Key, Prompt: item.Prompt}
			}),
		}
	})
}

// Assignment 评委视角的一场面试，带着交没交过的标记
type Assignment struct {
	ScheduleId      int64  `json:"scheduleId"`
	CandidateUid    int64  `json:"candidateUid"`
	RoundType       string `json:"roundType"`
	InterviewDate   string `json:"interviewDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int64  `json:"durationMinutes"`
	Mode            string `json:"mode"`
	MeetingLink     string `json:"meetingLink"`
	Submitted       bool   `json:"submitted"`
}

func newAssignment(s schedule.Schedule, submitted bool) Assignment {
	return Assignment{
		ScheduleId:      s.Id,
		CandidateUid:    s.CandidateUid,
		RoundType:       string(s.RoundType),
		InterviewDate:   s.InterviewDate,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		Mode:            string(s.Mode),
		MeetingLink:     s.MeetingLink,
		Submitted:       submitted,
	}
}
