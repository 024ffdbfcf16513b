package quizgen

import (
	"reflect"
	"testing"
)

func TestExtractSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "basic three sentences",
			input: "Hello world. This Is Fine! Next one?",
			want:  []string{"Hello world.", "This Is Fine!", "Next one?"},
		},
		{
			name:  "newlines normalized to spaces",
			input: "First line.\nSecond Point. And more!",
			want:  []string{"First line.", "Second Point.", "And more!"},
		},
		{
			name:  "windows line endings",
			input: "Alpha beta.\r\nGamma delta.",
			want:  []string{"Alpha beta.", "Gamma delta."},
		},
		{
			name:  "lowercase continuation does not split",
			input: "He said no. but then agreed.",
			want:  []string{"He said no. but then agreed."},
		},
		{
			name:  "digit starts a new sentence",
			input: "Step one done. 2 more to go.",
			want:  []string{"Step one done.", "2 more to go."},
		},
		{
			name:  "multiple spaces at the boundary",
			input: "One.   Two.",
			want:  []string{"One.", "Two."},
		},
		{
			name:  "no terminator keeps a single fragment",
			input: "just a note without punctuation",
			want:  []string{"just a note without punctuation"},
		},
		{
			name:  "question and exclamation boundaries",
			input: "Really? Yes! Absolutely.",
			want:  []string{"Really?", "Yes!", "Absolutely."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSentences(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractSentences(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractSentences_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n", "\r\n \t"} {
		if got := ExtractSentences(input); len(got) != 0 {
			t.Errorf("ExtractSentences(%q) = %#v, want empty", input, got)
		}
	}
}

func TestExtractSentences_NoEmptyElements(t *testing.T) {
	inputs := []string{
		"... A. B. C.",
		"!! ? Weird Start. Trailing spaces.   ",
		"Mixed\r\ncase. lines\nwith. 9 Digits. YES!",
		"One.\n\n\nTwo. THREE!",
	}
	for _, input := range inputs {
		for i, s := range ExtractSentences(input) {
			if s == "" {
				t.Errorf("ExtractSentences(%q)[%d] is empty", input, i)
			}
		}
	}
}
