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

type Status string

const (
	StatusCompleted Status = "completed"
	StatusScheduled Status = "scheduled"
	// StatusReady 只有终面会出现：前三轮都完成了，等安排终面
	StatusReady Status = "ready"
	// StatusNext 上一轮完成了，这一轮该排了。展示上等同 scheduled
	StatusNext    Status = "next"
	StatusPending Status = "pending"
)

// Render 展示用的文案，next 折叠成 scheduled
func (s Status) Render() string {
	if s == StatusNext {
		return string(StatusScheduled)
	}
	return string(s)
}

// canonicalRounds 推进顺序固定，跟实际排期的时间先后无关
var canonicalRounds = []string{"HR Round", "Technical Round", "Classroom Round", "Final Round"}

const finalRound = "Final Round"

type RoundProgress struct {
	RoundType string
	Status    Status
}

// ScheduleSnapshot 推导的输入，调用方负责取数
type ScheduleSnapshot struct {
	RoundType string
	Status    string
}

// Derive 把候选人的排期快照折算成四轮的展示状态。
// 每次读都从头算，不落任何状态。
// 取消和待审批的排期不参与推导；结论一旦下了，终面视为完成
func Derive(snapshots []ScheduleSnapshot, verdictSet bool) []RoundProgress {
	completed := make(map[string]bool, 4)
	scheduled := make(map[string]bool, 4)
	for _, s := range snapshots {
		switch s.Status {
		case "Completed":
			completed[s.RoundType] = true
		case "Scheduled":
			scheduled[s.RoundType] = true
		}
	}
	if verdictSet {
		completed[finalRound] = true
	}

	res := make([]RoundProgress, 0, len(canonicalRounds))
	for i, round := range canonicalRounds {
		var status Status
		switch {
		case completed[round]:
			status = StatusCompleted
		case scheduled[round]:
			status = StatusScheduled
		case round == finalRound && completed["HR Round"] &&
			completed["Technical Round"] && completed["Classroom Round"]:
			status = StatusReady
		case i > 0 && completed[canonicalRounds[i-1]]:
			status = StatusNext
		default:
			status = StatusPending
		}
		res = append(res, RoundProgress{
			RoundType: round,
			Status:    status,
		})
	}
	return res
}
