package service

import (
	"context"
	"math/rand/v2"
	"studymate_backend/internal/model"
	"studymate_backend/internal/quizgen"
	"studymate_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
)

func newAssessmentService(t *testing.T, deps *testDeps) *AssessmentService {
	t.Helper()
	builder := quizgen.NewBuilder(rand.New(rand.NewPCG(7, 11)), tickingClock(testStart))
	return NewAssessmentService(deps.State, deps.Repo, builder, testConfig())
}

func uploadFixture(t *testing.T, deps *testDeps) model.Document {
	t.Helper()
	svc := newDocumentService(t, deps)
	result := svc.Upload(context.Background(), "biology.txt",
		[]byte("Cells are the basic unit of life. Mitochondria produce energy. DNA stores genetic information. Proteins are built from amino acids."))
	return result.Document
}

func TestAssessmentService_Generate(t *testing.T) {
	deps := newTestDeps(t)
	svc := newAssessmentService(t, deps)
	doc := uploadFixture(t, deps)
	ctx := context.Background()

	assessment, err := svc.Generate(ctx, doc.ID, model.KindMultipleChoice, 4)
	require.NoError(t, err)

	require.Equal(t, doc.ID, assessment.DocumentID)
	require.Equal(t, "Quiz - biology.txt", assessment.Title)
	require.Len(t, assessment.Items, 4)
	for _, item := range assessment.Items {
		require.Equal(t, model.KindMultipleChoice, item.Kind)
		require.Equal(t, item.Answer, item.Choices[0])
	}

	// 生成结果进入状态和持久化
	got, err := svc.Get(assessment.ID)
	require.NoError(t, err)
	require.Equal(t, assessment.ID, got.ID)

	persisted, err := deps.Repo.LoadAssessments(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
}

func TestAssessmentService_GenerateDefaultCount(t *testing.T) {
	deps := newTestDeps(t)
	svc := newAssessmentService(t, deps)
	doc := uploadFixture(t, deps)

	assessment, err := svc.Generate(context.Background(), doc.ID, model.KindShortAnswer, 0)
	require.NoError(t, err)
	require.Len(t, assessment.Items, 5)
}

func TestAssessmentService_GenerateClampsCount(t *testing.T) {
	deps := newTestDeps(t)
	svc := newAssessmentService(t, deps)
	doc := uploadFixture(t, deps)

	assessment, err := svc.Generate(context.Background(), doc.ID, model.KindShortAnswer, 500)
	require.NoError(t, err)
	require.Len(t, assessment.Items, maxAssessmentItems)
}

func TestAssessmentService_GenerateMissingDocument(t *testing.T) {
	deps := newTestDeps(t)
	svc := newAssessmentService(t, deps)

	_, err := svc.Generate(context.Background(), 999, model.KindMultipleChoice, 3)
	require.ErrorIs(t, err, util.ErrDocumentNotFound)
}

func TestAssessmentService_GenerateInvalidKind(t *testing.T) {
	deps := newTestDeps(t)
	svc := newAssessmentService(t, deps)
	doc := uploadFixture(t, deps)

	_, err := svc.Generate(context.Background(), doc.ID, model.ItemKind("essay"), 3)
	require.Error(t, err)
	require.NotErrorIs(t, err, util.ErrDocumentNotFound)
}

func TestAssessmentService_GetMissing(t *testing.T) {
	deps := newTestDeps(t)
	svc := newAssessmentService(t, deps)

	_, err := svc.Get(31337)
	require.ErrorIs(t, err, util.ErrAssessmentNotFound)
}
