package model

import "time"

// ItemKind 测验题目类型
type ItemKind string

const (
	KindMultipleChoice ItemKind = "multiple-choice"
	KindShortAnswer    ItemKind = "short-answer"
)

// Valid 检查题目类型是否受支持
func (k ItemKind) Valid() bool {
	return k == KindMultipleChoice || k == KindShortAnswer
}

// AssessmentItem 单个测验题目
//
// 对于 multiple-choice 题目，Choices[0] 恒等于 Answer：选项在生成后不会被打乱，
// 正确答案总是排在第一位。这是沿用自产品原型的已知弱点，刻意保留。
// swagger:model AssessmentItem
type AssessmentItem struct {
	ID       int64    `json:"id"`
	Kind     ItemKind `json:"kind"`
	Question string   `json:"question"`
	Choices  []string `json:"choices,omitempty"` // 仅 multiple-choice 使用，正确选项在首位
	Answer   string   `json:"answer"`
}

// Assessment 基于单个文档生成的测验，创建后不再变更
// swagger:model Assessment
type Assessment struct {
	ID         int64            `json:"id"` // 创建时间戳（毫秒）
	DocumentID int64            `json:"documentId"`
	Title      string           `json:"title"`
	Items      []AssessmentItem `json:"items"`
	CreatedAt  time.Time        `json:"createdAt"`
}
