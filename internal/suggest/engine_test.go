package suggest

import (
	"fmt"
	"studymate_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForProfile(t *testing.T) {
	tests := []struct {
		name          string
		profile       model.Profile
		documentCount int
		want          []string
	}{
		{
			name: "bachelor in india without syllabus",
			profile: model.Profile{
				Qualification: "Bachelor of Science",
				Nationality:   "India",
			},
			documentCount: 0,
			want: []string{
				AdviceExamDepth,
				AdviceExamBalance,
				AdviceUploadSyllabus,
			},
		},
		{
			name:          "empty profile with several documents",
			profile:       model.Profile{},
			documentCount: 5,
			want: []string{
				AdviceUploadSyllabus,
				AdviceSpacedRepetition,
			},
		},
		{
			name:          "nothing matches falls back",
			profile:       model.Profile{Syllabus: "History of Art"},
			documentCount: 0,
			want:          []string{FallbackAdvice},
		},
		{
			name: "five rules in order",
			profile: model.Profile{
				Qualification: "Undergraduate studies",
				Syllabus:      "Calculus II",
				Nationality:   "INDIA",
				LearningStyle: "visual",
			},
			documentCount: 10,
			want: []string{
				AdviceExamDepth,
				AdviceMathPractice,
				AdviceExamBalance,
				AdviceSpacedRepetition,
				fmt.Sprintf(LearningStyleAdviceFormat, "visual"),
			},
		},
		{
			name:          "case insensitive substrings",
			profile:       model.Profile{Qualification: "BACHELOR", Syllabus: "Applied MATHEMATICS"},
			documentCount: 0,
			want:          []string{AdviceExamDepth, AdviceMathPractice},
		},
		{
			name:          "nationality must match exactly",
			profile:       model.Profile{Nationality: "Indian", Syllabus: "Biology"},
			documentCount: 0,
			want:          []string{FallbackAdvice},
		},
		{
			name:          "learning style is echoed verbatim",
			profile:       model.Profile{Syllabus: "Chemistry", LearningStyle: "auditory"},
			documentCount: 0,
			want:          []string{fmt.Sprintf(LearningStyleAdviceFormat, "auditory")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForProfile(tt.profile, tt.documentCount)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestForProfile_DocumentThreshold(t *testing.T) {
	profile := model.Profile{Syllabus: "Biology"}

	require.Equal(t, []string{FallbackAdvice}, ForProfile(profile, 2))
	require.Equal(t, []string{AdviceSpacedRepetition}, ForProfile(profile, 3))
}

// 每多设置一个字段，只新增对应规则的文案，已命中的文案保持不变。
func TestForProfile_RulesAreIndependent(t *testing.T) {
	profile := model.Profile{Syllabus: "Linear algebra and calculus"}
	require.Equal(t, []string{AdviceMathPractice}, ForProfile(profile, 0))

	profile.Nationality = "india"
	require.Equal(t, []string{AdviceMathPractice, AdviceExamBalance}, ForProfile(profile, 0))

	profile.Qualification = "B.Sc (Bachelor)"
	require.Equal(t,
		[]string{AdviceExamDepth, AdviceMathPractice, AdviceExamBalance},
		ForProfile(profile, 0))
}
