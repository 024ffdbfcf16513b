package quizgen

import (
	"strings"
	"unicode"
)

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func isTerminator(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

// ExtractSentences 将笔记原文切分为候选句子。
// 换行先归一为空格；句末符（. ? !）后接空白且下一个非空白字符为大写字母
// 或数字时视为句界。启发式偏向切得出来而非语法正确，"Dr. Smith" 这类
// 缩写也会被切开。片段去除首尾空白后为空则丢弃；空输入返回空结果。
func ExtractSentences(text string) []string {
	runes := []rune(newlineReplacer.Replace(text))

	var sentences []string
	appendFragment := func(from, to int) {
		if frag := strings.TrimSpace(string(runes[from:to])); frag != "" {
			sentences = append(sentences, frag)
		}
	}

	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		// 终止符后至少一个空白，再看下一个非空白字符
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 || j == len(runes) {
			continue
		}
		if unicode.IsUpper(runes[j]) || unicode.IsDigit(runes[j]) {
			appendFragment(start, i+1)
			start = j
			i = j - 1
		}
	}
	if start < len(runes) {
		appendFragment(start, len(runes))
	}
	return sentences
}
