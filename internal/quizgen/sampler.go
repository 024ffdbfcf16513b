package quizgen

// PlaceholderSentence 文档切不出任何句子时的占位内容
const PlaceholderSentence = "No content to generate from."

// Sample 从输入中独立等概率抽取 limit 句，允许重复命中。重复是沿用
// 原型的预期行为，不做去重。输入为空时无论 limit 多大都返回单个占位
// 元素；负数 limit 按 0 处理。
func Sample(r Rand, sentences []string, limit int) []string {
	if len(sentences) == 0 {
		return []string{PlaceholderSentence}
	}
	if limit < 0 {
		limit = 0
	}
	picked := make([]string, 0, limit)
	for i := 0; i < limit; i++ {
		picked = append(picked, sentences[r.IntN(len(sentences))])
	}
	return picked
}
