package repository

import (
	"context"
	"studymate_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStateRepository_FirstLoadIsEmpty(t *testing.T) {
	repo := NewStateRepository(NewMemoryKV())
	ctx := context.Background()

	profile, err := repo.LoadProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, model.Profile{}, profile)

	documents, err := repo.LoadDocuments(ctx)
	require.NoError(t, err)
	require.Empty(t, documents)

	assessments, err := repo.LoadAssessments(ctx)
	require.NoError(t, err)
	require.Empty(t, assessments)
}

func TestStateRepository_Roundtrip(t *testing.T) {
	repo := NewStateRepository(NewMemoryKV())
	ctx := context.Background()

	profile := model.Profile{
		Name:          "Asha",
		Institution:   "IIT Delhi",
		Syllabus:      "Calculus, Mechanics",
		Qualification: "Bachelor of Technology",
		Nationality:   "India",
		LearningStyle: "visual",
	}
	require.NoError(t, repo.SaveProfile(ctx, profile))

	uploadedAt := time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)
	documents := []model.Document{
		{ID: 1716197400000, Name: "notes.txt", Size: 64, Content: "Cells divide. DNA replicates.", UploadedAt: uploadedAt},
		{ID: 1716197500000, Name: "slides.pdf", Size: 2048, Content: model.PDFStubContent, UploadedAt: uploadedAt, Stub: true},
	}
	require.NoError(t, repo.SaveDocuments(ctx, documents))

	assessments := []model.Assessment{
		{
			ID:         1716197600000,
			DocumentID: 1716197400000,
			Title:      "Quiz - notes.txt",
			Items: []model.AssessmentItem{
				{
					ID:       1,
					Kind:     model.KindMultipleChoice,
					Question: `Based on your notes: "Cells divide."`,
					Choices:  []string{"Cells divide.", "DNA replicates.", "DNA replicates.", "DNA replicates."},
					Answer:   "Cells divide.",
				},
			},
			CreatedAt: uploadedAt,
		},
	}
	require.NoError(t, repo.SaveAssessments(ctx, assessments))

	gotProfile, err := repo.LoadProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, profile, gotProfile)

	gotDocuments, err := repo.LoadDocuments(ctx)
	require.NoError(t, err)
	require.Equal(t, documents, gotDocuments)

	gotAssessments, err := repo.LoadAssessments(ctx)
	require.NoError(t, err)
	require.Equal(t, assessments, gotAssessments)
}

func TestStateRepository_OverwritesWholesale(t *testing.T) {
	repo := NewStateRepository(NewMemoryKV())
	ctx := context.Background()

	require.NoError(t, repo.SaveDocuments(ctx, []model.Document{{ID: 1, Name: "a.txt"}, {ID: 2, Name: "b.txt"}}))
	require.NoError(t, repo.SaveDocuments(ctx, []model.Document{}))

	documents, err := repo.LoadDocuments(ctx)
	require.NoError(t, err)
	require.Empty(t, documents)
}

func TestStateRepository_CorruptValue(t *testing.T) {
	kv := NewMemoryKV()
	repo := NewStateRepository(kv)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "profile", []byte(`{not json`)))

	_, err := repo.LoadProfile(ctx)
	require.Error(t, err)
}

func TestStateRepository_FileBacked(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	repo := NewStateRepository(kv)
	ctx := context.Background()

	require.NoError(t, repo.SaveProfile(ctx, model.Profile{Name: "Ravi"}))

	reopened := NewStateRepository(kv)
	profile, err := reopened.LoadProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Ravi", profile.Name)
}
