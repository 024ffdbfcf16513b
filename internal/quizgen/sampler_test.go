package quizgen

import (
	"math/rand/v2"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestSample_ExactCountFromInput(t *testing.T) {
	sentences := []string{"alpha.", "beta.", "gamma."}
	members := map[string]bool{}
	for _, s := range sentences {
		members[s] = true
	}

	for _, limit := range []int{1, 3, 10, 25} {
		got := Sample(testRand(), sentences, limit)
		if len(got) != limit {
			t.Fatalf("Sample(limit=%d) returned %d elements", limit, len(got))
		}
		for i, s := range got {
			if !members[s] {
				t.Errorf("Sample(limit=%d)[%d] = %q, not in input", limit, i, s)
			}
		}
	}
}

func TestSample_ZeroAndNegativeLimit(t *testing.T) {
	sentences := []string{"only one."}
	if got := Sample(testRand(), sentences, 0); len(got) != 0 {
		t.Errorf("Sample(limit=0) = %#v, want empty", got)
	}
	if got := Sample(testRand(), sentences, -4); len(got) != 0 {
		t.Errorf("Sample(limit=-4) = %#v, want empty", got)
	}
}

func TestSample_EmptyInputPlaceholder(t *testing.T) {
	for _, limit := range []int{0, 1, 9} {
		got := Sample(testRand(), nil, limit)
		if len(got) != 1 || got[0] != PlaceholderSentence {
			t.Errorf("Sample(empty, limit=%d) = %#v, want [%q]", limit, got, PlaceholderSentence)
		}
	}
}

// 抽样允许重复：抽取数超过输入数时必然出现重复元素，重复属于契约行为。
func TestSample_WithReplacementAllowsDuplicates(t *testing.T) {
	got := Sample(testRand(), []string{"a.", "b."}, 50)
	seen := map[string]int{}
	for _, s := range got {
		seen[s]++
	}
	for s, n := range seen {
		if n > 1 {
			return // duplicate found, contract holds
		}
		_ = s
	}
	t.Error("50 draws over 2 sentences produced no duplicates")
}
