package suggest

import (
	"fmt"
	"strings"
	"studymate_backend/internal/model"
)

const (
	AdviceExamDepth        = "Focus on depth over breadth and practice past exam patterns for your level."
	AdviceMathPractice     = "Work through problem sets daily and use timed quizzes to build speed."
	AdviceExamBalance      = "Balance multiple-choice drills with subjective answer practice, as many exams mix both."
	AdviceUploadSyllabus   = "Upload your syllabus or notes so quizzes can match your coursework."
	AdviceSpacedRepetition = "You have several documents uploaded. Try spaced repetition: revisit an older one with flashcards."

	// LearningStyleAdviceFormat 将 Profile.LearningStyle 原样嵌入建议文本
	LearningStyleAdviceFormat = "Since you prefer %s learning, pick materials in that format whenever you can."

	// FallbackAdvice 所有规则都未命中时单独返回，保证调用方至少有一条可展示
	FallbackAdvice = "No profile data yet. Fill in your profile and upload notes to get study suggestions."
)

// spacedRepetitionThreshold 触发间隔重复建议的最少文档数
const spacedRepetitionThreshold = 3

// ForProfile 按固定顺序对档案逐条应用建议规则并返回命中的文案。
// 规则相互独立，命中一条贡献一条，结果保持规则顺序。国籍需小写后
// 等于 "india"；学历与大纲为小写子串匹配。
func ForProfile(p model.Profile, documentCount int) []string {
	qualification := strings.ToLower(p.Qualification)
	syllabus := strings.ToLower(p.Syllabus)

	var advice []string
	if strings.Contains(qualification, "bachelor") || strings.Contains(qualification, "undergrad") {
		advice = append(advice, AdviceExamDepth)
	}
	if strings.Contains(syllabus, "math") || strings.Contains(syllabus, "calculus") {
		advice = append(advice, AdviceMathPractice)
	}
	if strings.ToLower(p.Nationality) == "india" {
		advice = append(advice, AdviceExamBalance)
	}
	if p.Syllabus == "" {
		advice = append(advice, AdviceUploadSyllabus)
	}
	if documentCount >= spacedRepetitionThreshold {
		advice = append(advice, AdviceSpacedRepetition)
	}
	if p.LearningStyle != "" {
		advice = append(advice, fmt.Sprintf(LearningStyleAdviceFormat, p.LearningStyle))
	}

	if len(advice) == 0 {
		return []string{FallbackAdvice}
	}
	return advice
}
