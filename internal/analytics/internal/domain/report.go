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
	"math"
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

const (
	TierRecommended    = "Recommended"
	TierWaitlist       = "Waitlist"
	TierNotRecommended = "Not Recommended"
)

// noCommentPlaceholder 历史数据就是这个文案，报表里也沿用
const noCommentPlaceholder = "No specific qualitative comments."

// Record 折算的输入，取自一条已完成的评价
type Record struct {
	RoundType           string
	TotalScore          int64
	TotalMaxScore       int64
	QuantitativeScores  map[string]ModuleScore
	QualitativeComments []Comment
}

type ModuleScore struct {
	Score int64
	Max   int64
}

type Comment struct {
	Round   string
	Comment string
}

type RoundScore struct {
	Round    string
	AvgScore int64
	Score    int64
	MaxScore int64
}

type SectionScore struct {
	Section  string
	Score    int64
	Max      int64
	AvgScore int64
	Comment  string
}

type CandidateInfo struct {
	Uid      int64
	Name     string
	Position string
	// FinalVerdict 权威结论，可能还没下
	FinalVerdict string
}

// Report 一个候选人所有已完成评价折算出来的全景
type Report struct {
	CandidateInfo CandidateInfo
	// Recommendation 按总分推导的建议档位，和 FinalVerdict 是两回事
	Recommendation   string
	OverallScore     int64
	TotalScoreSum    int64
	TotalMaxScoreSum int64
	EvaluationCount  int
	GroupedByRound   []RoundScore
	SectionScores    []SectionScore
	AISummary        string
}

// Tier 推荐档位：>=80 推荐，>=60 候补，其余不推荐
func Tier(overall int64) string {
	switch {
	case overall >= 80:
		return TierRecommended
	case overall >= 60:
		return TierWaitlist
	default:
		return TierNotRecommended
	}
}

// roundOrder 输出顺序跟着评价提交顺序里首次出现的轮次走
type roundAgg struct {
	score int64
	max   int64
}

type sectionAgg struct {
	score    int64
	max      int64
	comments []string
}

// Fold 把已完成的评价折算成轮次均分、模块均分和总分。
// 分母为 0 的轮次直接略过，不展示成 0%
func Fold(records []Record) Report {
	var r Report
	r.EvaluationCount = len(records)
	if len(records) == 0 {
		return r
	}

	rounds := make(map[string]*roundAgg)
	roundOrder := make([]string, 0, 4)
	sections := make(map[string]*sectionAgg)
	sectionOrder := make([]string, 0, 8)

	for _, rec := range records {
		agg, ok := rounds[rec.RoundType]
		if !ok {
			agg = &roundAgg{}
			rounds[rec.RoundType] = agg
			roundOrder = append(roundOrder, rec.RoundType)
		}
		agg.score += rec.TotalScore
		agg.max += rec.TotalMaxScore

		commentOf := make(map[string]string, len(rec.QualitativeComments))
		for _, c := range rec.QualitativeComments {
			commentOf[c.Round] = c.Comment
		}
		for module, ms := range rec.QuantitativeScores {
			sa, ok := sections[module]
			if !ok {
				sa = &sectionAgg{}
				sections[module] = sa
				sectionOrder = append(sectionOrder, module)
			}
			sa.score += ms.Score
			sa.max += ms.Max
			if c := commentOf[module]; c != "" && !slice.Contains(sa.comments, c) {
				sa.comments = append(sa.comments, c)
			}
		}
	}

	for _, round := range roundOrder {
		agg := rounds[round]
		if agg.max == 0 {
			continue
		}
		r.GroupedByRound = append(r.GroupedByRound, RoundScore{
			Round:    round,
			AvgScore: percentage(agg.score, agg.max),
			Score:    agg.score,
			MaxScore: agg.max,
		})
		r.TotalScoreSum += agg.score
		r.TotalMaxScoreSum += agg.max
	}

	for _, section := range sectionOrder {
		sa := sections[section]
		comment := noCommentPlaceholder
		if len(sa.comments) > 0 {
			comment = strings.Join(sa.comments, " | ")
		}
		r.SectionScores = append(r.SectionScores, SectionScore{
			Section:  section,
			Score:    sa.score,
			Max:      sa.max,
			AvgScore: percentage(sa.score, sa.max),
			Comment:  comment,
		})
	}

	r.OverallScore = percentage(r.TotalScoreSum, r.TotalMaxScoreSum)
	r.Recommendation = Tier(r.OverallScore)
	return r
}

func percentage(score, max int64) int64 {
	if max == 0 {
		return 0
	}
	return int64(math.Round(float64(score) / float64(max) * 100))
}
