package service

import (
	"context"
	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/pkg/logger"
	"studymate_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// statePersister 在每次状态变更后整体落盘。
// 写失败只记日志和指标,不向上传播,请求照常成功。
type statePersister struct {
	repo *repository.StateRepository
}

func (p *statePersister) profile(ctx context.Context, profile model.Profile) {
	if err := p.repo.SaveProfile(ctx, profile); err != nil {
		logger.Log.Error("持久化档案失败", zap.Error(err))
		monitoring.StatePersistFailures.WithLabelValues("profile").Inc()
	}
}

func (p *statePersister) documents(ctx context.Context, documents []model.Document) {
	if err := p.repo.SaveDocuments(ctx, documents); err != nil {
		logger.Log.Error("持久化文档列表失败", zap.Error(err))
		monitoring.StatePersistFailures.WithLabelValues("documents").Inc()
	}
}

func (p *statePersister) assessments(ctx context.Context, assessments []model.Assessment) {
	if err := p.repo.SaveAssessments(ctx, assessments); err != nil {
		logger.Log.Error("持久化测验列表失败", zap.Error(err))
		monitoring.StatePersistFailures.WithLabelValues("assessments").Inc()
	}
}
