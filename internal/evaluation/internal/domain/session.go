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

type SessionState string

const (
	// SessionActive 倒计时进行中，可以改分
	SessionActive SessionState = "Active"
	// SessionSubmitting 正在落库
	SessionSubmitting SessionState = "Submitting"
	// SessionSubmitted 终态
	SessionSubmitted SessionState = "Submitted"
)

// Session 评分会话快照，给轮询的前端看
type Session struct {
	ScheduleId       int64
	EvaluatorUid     int64
	CandidateUid     int64
	RoundType        string
	State            SessionState
	RemainingSeconds int64
	Responses        map[string]map[string]int64
	Comments         map[string]string
}
