package event

const EvaluationEventName = "evaluation_submitted_events"

// EvaluationEvent 一条评价落库之后广播，目前只有分析侧在消费
type EvaluationEvent struct {
	ScheduleId   int64  `json:"scheduleId"`
	EvaluatorUid int64  `json:"evaluatorUid"`
	CandidateUid int64  `json:"candidateUid"`
	RoundType    string `json:"roundType"`
	TotalScore   int64  `json:"totalScore"`
	TotalMax     int64  `json:"totalMax"`
	IsComplete   bool   `json:"isComplete"`
}
