package service

import (
	"context"
	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/state"
	"studymate_backend/pkg/logger"
)

// ProfileService 管理唯一的一份用户档案
type ProfileService struct {
	State     *state.AppState
	persister *statePersister
}

func NewProfileService(appState *state.AppState, stateRepo *repository.StateRepository) *ProfileService {
	return &ProfileService{
		State:     appState,
		persister: &statePersister{repo: stateRepo},
	}
}

func (s *ProfileService) Get() model.Profile {
	return s.State.Profile()
}

// Replace 整体替换档案
func (s *ProfileService) Replace(ctx context.Context, profile model.Profile) model.Profile {
	updated := s.State.SetProfile(profile)
	s.persister.profile(ctx, updated)
	return updated
}

// Patch 按字段更新档案,未出现的字段保持原值
func (s *ProfileService) Patch(ctx context.Context, upd model.ProfileUpdate) model.Profile {
	updated := s.State.UpdateProfile(upd)
	s.persister.profile(ctx, updated)
	return updated
}

// Reset 清空档案
func (s *ProfileService) Reset(ctx context.Context) model.Profile {
	updated := s.State.ResetProfile()
	s.persister.profile(ctx, updated)
	logger.Log.Info("Profile reset")
	return updated
}
