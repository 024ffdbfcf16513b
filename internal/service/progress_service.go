package service

import (
	"studymate_backend/internal/model"
	"studymate_backend/internal/quizgen"
	"studymate_backend/internal/state"
	"studymate_backend/pkg/logger"

	"go.uber.org/zap"
)

// ProgressService 维护进度图表数据。
// 序列只存在于会话内,随进程启动重置,不参与持久化。
type ProgressService struct {
	State *state.AppState
	Rand  quizgen.Rand
}

func NewProgressService(appState *state.AppState) *ProgressService {
	return &ProgressService{
		State: appState,
		Rand:  quizgen.SystemRand(),
	}
}

func (s *ProgressService) Series() []model.ProgressPoint {
	return s.State.Progress()
}

// SimulateCompletion 模拟完成一次学习:随机挑一个月份,
// 把成绩提高 5~20 分,封顶 100,返回更新后的整个序列。
func (s *ProgressService) SimulateCompletion() []model.ProgressPoint {
	series := s.State.Progress()
	if len(series) == 0 {
		return series
	}

	index := s.Rand.IntN(len(series))
	delta := 5 + s.Rand.IntN(16)
	updated := s.State.BumpProgress(index, delta)

	logger.Log.Info("Progress simulated",
		zap.String("month", updated[index].Month),
		zap.Int("score", updated[index].Score),
	)
	return updated
}
