package service

import (
	"studymate_backend/internal/state"
	"studymate_backend/internal/suggest"
)

// SuggestionService 根据当前档案和文档数量产出学习建议
type SuggestionService struct {
	State *state.AppState
}

func NewSuggestionService(appState *state.AppState) *SuggestionService {
	return &SuggestionService{State: appState}
}

func (s *SuggestionService) GetSuggestions() []string {
	return suggest.ForProfile(s.State.Profile(), s.State.DocumentCount())
}
