package quizgen

import (
	"strings"
	"studymate_backend/internal/model"
	"testing"
	"time"
	"unicode/utf8"
)

var fixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func testDoc(content string) model.Document {
	return model.Document{
		ID:         42,
		Name:       "biology-notes.txt",
		Content:    content,
		UploadedAt: fixedTime,
	}
}

const multiSentenceNotes = "Cells are the basic unit of life. Mitochondria produce energy. DNA stores genetic information. Proteins are built from amino acids. Enzymes speed up reactions."

func TestBuild_MultipleChoice(t *testing.T) {
	b := NewBuilder(testRand(), fixedClock)
	doc := testDoc(multiSentenceNotes)
	sentences := ExtractSentences(doc.Content)

	a := b.Build(doc, model.KindMultipleChoice, 4)

	if a.ID != fixedTime.UnixMilli() {
		t.Errorf("assessment ID = %d, want %d", a.ID, fixedTime.UnixMilli())
	}
	if a.DocumentID != doc.ID {
		t.Errorf("DocumentID = %d, want %d", a.DocumentID, doc.ID)
	}
	if a.Title != "Quiz - biology-notes.txt" {
		t.Errorf("unexpected title %q", a.Title)
	}
	if !a.CreatedAt.Equal(fixedTime) {
		t.Errorf("CreatedAt = %v, want %v", a.CreatedAt, fixedTime)
	}
	if len(a.Items) != 4 {
		t.Fatalf("got %d items, want 4", len(a.Items))
	}
	if len(sentences) != 5 {
		t.Fatalf("fixture should extract 5 sentences, got %d", len(sentences))
	}

	for i, item := range a.Items {
		if item.ID != int64(i+1) {
			t.Errorf("item %d ID = %d, want %d", i, item.ID, i+1)
		}
		if item.Kind != model.KindMultipleChoice {
			t.Errorf("item %d kind = %q", i, item.Kind)
		}
		// 正确选项恒为首位（选项不打乱，沿用原型的已知弱点）
		if len(item.Choices) == 0 || item.Choices[0] != item.Answer {
			t.Errorf("item %d: answer %q is not the first choice %v", i, item.Answer, item.Choices)
		}
		// pool has 4 sentences besides any seed: 1 correct + 3 distractors
		if len(item.Choices) != 1+distractorCount {
			t.Errorf("item %d: %d choices, want %d", i, len(item.Choices), 1+distractorCount)
		}
		for j, c := range item.Choices {
			if utf8.RuneCountInString(c) > choiceLimit+3 {
				t.Errorf("item %d choice %d exceeds cap: %q", i, j, c)
			}
		}
		if !strings.HasPrefix(item.Question, `Based on your notes: "`) {
			t.Errorf("item %d question template mismatch: %q", i, item.Question)
		}
	}
}

func TestBuild_MultipleChoiceEmptyPool(t *testing.T) {
	b := NewBuilder(testRand(), fixedClock)
	doc := testDoc("Photosynthesis converts light into chemical energy.")

	a := b.Build(doc, model.KindMultipleChoice, 2)

	if len(a.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(a.Items))
	}
	for i, item := range a.Items {
		want := []string{"Photosynthesis converts light into chemical energy.", FallbackDistractor}
		if len(item.Choices) != 2 || item.Choices[0] != want[0] || item.Choices[1] != want[1] {
			t.Errorf("item %d choices = %#v, want %#v", i, item.Choices, want)
		}
		if item.Answer != item.Choices[0] {
			t.Errorf("item %d answer = %q", i, item.Answer)
		}
	}
}

func TestBuild_ShortAnswer(t *testing.T) {
	b := NewBuilder(testRand(), fixedClock)
	doc := testDoc(multiSentenceNotes)
	sentences := ExtractSentences(doc.Content)
	members := map[string]bool{}
	for _, s := range sentences {
		members[s] = true
	}

	a := b.Build(doc, model.KindShortAnswer, 5)

	if len(a.Items) != 5 {
		t.Fatalf("got %d items, want 5", len(a.Items))
	}
	for i, item := range a.Items {
		if item.Kind != model.KindShortAnswer {
			t.Errorf("item %d kind = %q", i, item.Kind)
		}
		if len(item.Choices) != 0 {
			t.Errorf("item %d has choices %v on a short-answer item", i, item.Choices)
		}
		// 答案必须是完整原句（未截断）
		if !members[item.Answer] {
			t.Errorf("item %d answer %q is not a source sentence", i, item.Answer)
		}
	}
}

func TestBuild_LongSentenceTruncation(t *testing.T) {
	long := "This single sentence is deliberately padded far beyond both truncation caps with repeated filler words " + strings.Repeat("filler ", 30) + "and it ends here."
	b := NewBuilder(testRand(), fixedClock)
	doc := testDoc(long)

	mc := b.Build(doc, model.KindMultipleChoice, 1).Items[0]
	if got := utf8.RuneCountInString(mc.Answer); got != choiceLimit+3 {
		t.Errorf("truncated answer length = %d runes, want %d", got, choiceLimit+3)
	}
	if !strings.HasSuffix(mc.Answer, "...") {
		t.Errorf("truncated answer %q lacks ellipsis", mc.Answer)
	}
	if !strings.HasSuffix(mc.Question, `..."`) {
		t.Errorf("question %q should end with a truncated quote", mc.Question)
	}

	sa := b.Build(doc, model.KindShortAnswer, 1).Items[0]
	if sa.Answer != long {
		t.Errorf("short-answer must keep the full sentence, got %q", sa.Answer)
	}
}

func TestBuild_EmptyDocumentPlaceholder(t *testing.T) {
	b := NewBuilder(testRand(), fixedClock)
	doc := testDoc("")

	a := b.Build(doc, model.KindMultipleChoice, 3)

	// 空文档时采样器固定返回单个占位句，与请求数量无关
	if len(a.Items) != 1 {
		t.Fatalf("got %d items, want 1 placeholder item", len(a.Items))
	}
	item := a.Items[0]
	if !strings.Contains(item.Question, PlaceholderSentence) {
		t.Errorf("question %q does not quote the placeholder", item.Question)
	}
	want := []string{PlaceholderSentence, FallbackDistractor}
	if len(item.Choices) != 2 || item.Choices[0] != want[0] || item.Choices[1] != want[1] {
		t.Errorf("choices = %#v, want %#v", item.Choices, want)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		limit int
		want  string
	}{
		{"empty maps to placeholder", "", 80, NoContentPlaceholder},
		{"short unchanged", "short text", 80, "short text"},
		{"exact cap unchanged", strings.Repeat("x", 10), 10, strings.Repeat("x", 10)},
		{"over cap gets ellipsis", "abcdefghij", 4, "abcd..."},
		{"multibyte counted in runes", "héllo wörld", 5, "héllo..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.limit); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.limit, got, tt.want)
			}
		})
	}
}
