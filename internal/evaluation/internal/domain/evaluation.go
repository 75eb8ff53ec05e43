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

// ModuleScore 单个模块的得分和满分
type ModuleScore struct {
	Score int64 `json:"score"`
	Max   int64 `json:"max"`
}

// Comment 模块级的文字评语
type Comment struct {
	Round   string `json:"round"`
	Comment string `json:"comment"`
}

type Evaluation struct {
	Id           int64
	ScheduleId   int64
	EvaluatorUid int64
	CandidateUid int64
	RoundType    string
	// SubmissionTime 毫秒时间戳
	SubmissionTime int64
	// TimeRemainingSeconds 提交时剩余秒数，自动提交时为 0
	TimeRemainingSeconds int64
	QuantitativeScores   map[string]ModuleScore
	QualitativeComments  []Comment
	TotalScore           int64
	TotalMaxScore        int64
	// IsComplete 评委主动提交为 true，倒计时打断为 false
	IsComplete bool
	Ctime      int64
}
