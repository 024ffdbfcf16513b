package quizgen

import (
	"fmt"
	"studymate_backend/internal/model"
	"time"
)

const (
	questionQuoteLimit = 120 // 题干中引用原句的最大长度（按 rune 计）
	choiceLimit        = 80  // 选项文本的最大长度
	distractorPoolCap  = 20  // 干扰项候选池只取前 20 句
	distractorCount    = 3
)

// FallbackDistractor 候选池为空时的兜底干扰项
const FallbackDistractor = "Review the text for details."

// NoContentPlaceholder 空内容在截断引用中的占位文本
const NoContentPlaceholder = "(no content)"

// 两种题型共用同一个题干模板
const questionTemplate = `Based on your notes: "%s"`

// Truncate 按 rune 截断到 limit 并在超长时追加 "..."，未超长原样返回。
// 空串映射为 NoContentPlaceholder。按 rune 处理避免截断多字节字符。
func Truncate(s string, limit int) string {
	if s == "" {
		return NoContentPlaceholder
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// Builder 将抽样出的句子组装为测验。Rand 与 Now 可注入以保证测试可复现。
type Builder struct {
	Rand Rand
	Now  func() time.Time
}

// NewBuilder 构造 Builder，nil 参数回落到系统随机源与系统时钟。
func NewBuilder(r Rand, now func() time.Time) *Builder {
	if r == nil {
		r = SystemRand()
	}
	if now == nil {
		now = time.Now
	}
	return &Builder{Rand: r, Now: now}
}

// Build 基于文档文本生成 count 道题的测验。
// 每道题引用一个抽样句（抽样可重复，见 Sample）。选择题的正确项固定为
// Choices[0] 且不做乱序，沿用原型的既有行为；切不出句子的文档退化为
// 占位内容而不报错。
func (b *Builder) Build(doc model.Document, kind model.ItemKind, count int) model.Assessment {
	sentences := ExtractSentences(doc.Content)
	seeds := Sample(b.Rand, sentences, count)

	created := b.Now()
	assessment := model.Assessment{
		ID:         created.UnixMilli(),
		DocumentID: doc.ID,
		Title:      fmt.Sprintf("Quiz - %s", doc.Name),
		CreatedAt:  created,
	}

	for i, seed := range seeds {
		item := model.AssessmentItem{
			ID:       int64(i + 1),
			Kind:     kind,
			Question: fmt.Sprintf(questionTemplate, Truncate(seed, questionQuoteLimit)),
		}
		if kind == model.KindMultipleChoice {
			correct := Truncate(seed, choiceLimit)
			item.Choices = append([]string{correct}, b.distractors(sentences, seed)...)
			item.Answer = correct
		} else {
			// short-answer 的答案保留完整原句
			item.Answer = seed
		}
		assessment.Items = append(assessment.Items, item)
	}
	return assessment
}

// distractors 从候选池独立等概率抽取至多 3 个干扰项（可重复）。
// 候选池为原文顺序中与种子句不同的前 20 句；池为空时退化为固定提示句。
func (b *Builder) distractors(sentences []string, seed string) []string {
	pool := make([]string, 0, distractorPoolCap)
	for _, s := range sentences {
		if s == seed {
			continue
		}
		pool = append(pool, s)
		if len(pool) == distractorPoolCap {
			break
		}
	}

	if len(pool) == 0 {
		return []string{FallbackDistractor}
	}
	out := make([]string, 0, distractorCount)
	for i := 0; i < distractorCount; i++ {
		out = append(out, Truncate(pool[b.Rand.IntN(len(pool))], choiceLimit))
	}
	return out
}
