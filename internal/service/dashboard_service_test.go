package service

import (
	"context"
	"studymate_backend/internal/model"
	"studymate_backend/internal/suggest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetDashboard(t *testing.T) {
	deps := newTestDeps(t)
	docSvc := newDocumentService(t, deps)
	svc := NewDashboardService(deps.State, NewSuggestionService(deps.State))
	ctx := context.Background()

	names := []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"}
	for _, name := range names {
		docSvc.Upload(ctx, name, []byte("Plants grow. Water flows."))
	}

	dashboard := svc.GetDashboard()

	require.Equal(t, 5, dashboard.DocumentCount)
	require.Equal(t, 0, dashboard.AssessmentCount)
	require.Nil(t, dashboard.LatestAssessment)
	require.Len(t, dashboard.Progress, 8)

	// 最近 3 份,新的在前,不带正文
	require.Len(t, dashboard.RecentDocuments, 3)
	require.Equal(t, "e.txt", dashboard.RecentDocuments[0].Name)
	require.Equal(t, "d.txt", dashboard.RecentDocuments[1].Name)
	require.Equal(t, "c.txt", dashboard.RecentDocuments[2].Name)

	// 空档案 + 5 份文档:提示补充大纲、做间隔复习
	require.Equal(t,
		[]string{suggest.AdviceUploadSyllabus, suggest.AdviceSpacedRepetition},
		dashboard.Suggestions)
}

func TestDashboardService_LatestAssessment(t *testing.T) {
	deps := newTestDeps(t)
	assessSvc := newAssessmentService(t, deps)
	svc := NewDashboardService(deps.State, NewSuggestionService(deps.State))
	doc := uploadFixture(t, deps)

	first, err := assessSvc.Generate(context.Background(), doc.ID, model.KindShortAnswer, 2)
	require.NoError(t, err)
	second, err := assessSvc.Generate(context.Background(), doc.ID, model.KindMultipleChoice, 3)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	dashboard := svc.GetDashboard()

	require.Equal(t, 2, dashboard.AssessmentCount)
	require.NotNil(t, dashboard.LatestAssessment)
	require.Equal(t, second.ID, dashboard.LatestAssessment.ID)
	require.Equal(t, second.Title, dashboard.LatestAssessment.Title)
	require.Equal(t, doc.ID, dashboard.LatestAssessment.DocumentID)
	require.Equal(t, 3, dashboard.LatestAssessment.ItemCount)
}

func TestDashboardService_EmptyState(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewDashboardService(deps.State, NewSuggestionService(deps.State))

	dashboard := svc.GetDashboard()
	require.Zero(t, dashboard.DocumentCount)
	require.Empty(t, dashboard.RecentDocuments)
	require.Equal(t, []string{suggest.FallbackAdvice}, dashboard.Suggestions)
}
