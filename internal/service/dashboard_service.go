package service

import (
	"studymate_backend/internal/model"
	"studymate_backend/internal/state"
	"time"
)

type DashboardService struct {
	State             *state.AppState
	SuggestionService *SuggestionService
}

func NewDashboardService(appState *state.AppState, suggestionService *SuggestionService) *DashboardService {
	return &DashboardService{
		State:             appState,
		SuggestionService: suggestionService,
	}
}

type Dashboard struct {
	DocumentCount    int                   `json:"documentCount"`
	AssessmentCount  int                   `json:"assessmentCount"`
	RecentDocuments  []DocumentSummary     `json:"recentDocuments"`
	LatestAssessment *AssessmentSummary    `json:"latestAssessment,omitempty"`
	Suggestions      []string              `json:"suggestions"`
	Progress         []model.ProgressPoint `json:"progress"`
}

// DocumentSummary 列表展示用的精简文档信息,不携带正文
type DocumentSummary struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
	Stub       bool      `json:"stub,omitempty"`
}

// AssessmentSummary 仪表盘展示用的精简测验信息
type AssessmentSummary struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	DocumentID int64     `json:"documentId"`
	ItemCount  int       `json:"itemCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s *DashboardService) GetDashboard() *Dashboard {
	documents := s.State.Documents()
	assessments := s.State.Assessments()

	// 最近上传的 3 份资料,新的在前
	recent := make([]DocumentSummary, 0, 3)
	for i := len(documents) - 1; i >= 0 && len(recent) < 3; i-- {
		d := documents[i]
		recent = append(recent, DocumentSummary{
			ID:         d.ID,
			Name:       d.Name,
			Size:       d.Size,
			UploadedAt: d.UploadedAt,
			Stub:       d.Stub,
		})
	}

	var latest *AssessmentSummary
	if len(assessments) > 0 {
		a := assessments[len(assessments)-1]
		latest = &AssessmentSummary{
			ID:         a.ID,
			Title:      a.Title,
			DocumentID: a.DocumentID,
			ItemCount:  len(a.Items),
			CreatedAt:  a.CreatedAt,
		}
	}

	return &Dashboard{
		DocumentCount:    len(documents),
		AssessmentCount:  len(assessments),
		RecentDocuments:  recent,
		LatestAssessment: latest,
		Suggestions:      s.SuggestionService.GetSuggestions(),
		Progress:         s.State.Progress(),
	}
}
