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

// RubricItem 评分项，单项 0-10 分
type RubricItem struct {
	Key    string
	Prompt string
}

type RubricModule struct {
	Name  string
	Items []RubricItem
}

// MaxScore 满分 = 有记录的评分项数 × 10
func (m RubricModule) MaxScore() int64 {
	return int64(len(m.Items)) * 10
}

const (
	ModuleAppearance    = "Appearance"
	ModuleCommunication = "Communication"
	ModulePsychometric  = "Psychometric"
	ModuleHRAssessment  = "HR Assessment"
	ModuleTechnical1    = "Technical 1"
	ModuleTechnical2    = "Technical 2"
	// ModuleSummary 终面伪模块，没有评分项，只有结论
	ModuleSummary = "Summary"
)

// rubricModules 静态配置，和前端评分表一一对应
var rubricModules = map[string]RubricModule{
	ModuleAppearance: {Name: ModuleAppearance, Items: []RubricItem{
		{Key: "attire", Prompt: "Professional Attire Standards"},
		{Key: "grooming", Prompt: "Personal Grooming Excellence"},
		{Key: "posture", Prompt: "Professional Posture & Demeanor"},
		{Key: "overall", Prompt: "Outstanding Overall Presentation"},
	}},
	ModuleCommunication: {Name: ModuleCommunication, Items: []RubricItem{
		{Key: "verbal", Prompt: "Excellent Verbal Communication"},
		{Key: "listening", Prompt: "Active Listening Confidence"},
		{Key: "nonverbal", Prompt: "Professional Non-Verbal Communication"},
		{Key: "coherence", Prompt: "Clear & Coherent Expression"},
		{Key: "confidence", Prompt: "Communication Confidence"},
	}},
	ModulePsychometric: {Name: ModulePsychometric, Items: []RubricItem{
		{Key: "problem_solving", Prompt: "Excellent Problem-Solving Abilities"},
		{Key: "adaptability", Prompt: "High Adaptability & Flexibility"},
		{Key: "teamwork", Prompt: "Outstanding Teamwork Skills"},
		{Key: "leadership", Prompt: "Strong Leadership Potential"},
		{Key: "stress_mgmt", Prompt: "Excellent Stress Management"},
		{Key: "emotional_iq", Prompt: "High Emotional Intelligence"},
	}},
	ModuleHRAssessment: {Name: ModuleHRAssessment, Items: []RubricItem{
		{Key: "background", Prompt: "Background Verification Excellence"},
		{Key: "cultural_fit", Prompt: "Cultural Fit & Values Alignment"},
		{Key: "work_ethic", Prompt: "Strong Work Ethics & Integrity"},
		{Key: "behavioral", Prompt: "Positive Behavioral Traits"},
		{Key: "interpersonal", Prompt: "Excellent Interpersonal Skills"},
		{Key: "history", Prompt: "Outstanding Professional History"},
	}},
	ModuleTechnical1: {Name: ModuleTechnical1, Items: []RubricItem{
		{Key: "core_skills", Prompt: "Core Technical Skills Mastery"},
		{Key: "advanced_problem_solving", Prompt: "Advanced Problem-Solving Ability"},
		{Key: "quality_code", Prompt: "High-Quality Code Standards"},
		{Key: "system_design", Prompt: "System Design & Architecture"},
		{Key: "algorithms", Prompt: "Algorithms & Data Structure Expertise"},
		{Key: "debugging", Prompt: "Debugging & Testing Proficiency"},
	}},
	ModuleTechnical2: {Name: ModuleTechnical2, Items: []RubricItem{
		{Key: "cloud", Prompt: "Cloud Technologies & DevOps"},
		{Key: "leadership_mentor", Prompt: "Technical Leadership & Mentoring"},
	}},
	ModuleSummary: {Name: ModuleSummary},
}

// roundModules 轮次到评分模块的固定映射
var roundModules = map[string][]string{
	"Classroom Round": {ModuleAppearance, ModuleCommunication, ModulePsychometric},
	"HR Round":        {ModuleHRAssessment},
	"Technical Round": {ModuleTechnical1, ModuleTechnical2},
	"Final Round":     {ModuleSummary},
}

// ModulesForRound 某个轮次要填的评分模块，按固定顺序
func ModulesForRound(roundType string) []RubricModule {
	names := roundModules[roundType]
	res := make([]RubricModule, 0, len(names))
	for _, name := range names {
		res = append(res, rubricModules[name])
	}
	return res
}

// VerdictOnly 终面没有评分项，直接走结论
func VerdictOnly(roundType string) bool {
	return roundType == "Final Round"
}

// ModuleItem 校验 key 是否属于该模块
func ModuleItem(module, key string) bool {
	m, ok := rubricModules[module]
	if !ok {
		return false
	}
	for _, item := range m.Items {
		if item.Key == key {
			return true
		}
	}
	return false
}

// InitialResponses 每个评分项初始化为 0 分
func InitialResponses(roundType string) map[string]map[string]int64 {
	res := make(map[string]map[string]int64)
	for _, m := range ModulesForRound(roundType) {
		scores := make(map[string]int64, len(m.Items))
		for _, item := range m.Items {
			scores[item.Key] = 0
		}
		res[m.Name] = scores
	}
	return res
}

// Score 把一次会话的作答折算成持久化字段。
// 只有记录了分数的评分项计入分母；没有评分项的模块不进总分
func Score(roundType string,
	responses map[string]map[string]int64,
	comments map[string]string) (map[string]ModuleScore, []Comment, int64, int64) {
	quantitative := make(map[string]ModuleScore)
	qualitative := make([]Comment, 0, 4)
	var total, totalMax int64
	for _, m := range ModulesForRound(roundType) {
		scores := responses[m.Name]
		var moduleScore, moduleMax int64
		for _, item := range m.Items {
			s, ok := scores[item.Key]
			if !ok {
				continue
			}
			moduleScore += s
			moduleMax += 10
		}
		if comment := comments[m.Name]; comment != "" {
			qualitative = append(qualitative, Comment{
				Round:   m.Name,
				Comment: comment,
			})
		}
		if moduleMax == 0 {
			continue
		}
		quantitative[m.Name] = ModuleScore{
			Score: moduleScore,
			Max:   moduleMax,
		}
		total += moduleScore
		totalMax += moduleMax
	}
	return quantitative, qualitative, total, totalMax
}
