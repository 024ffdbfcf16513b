package service

import (
	"context"
	"fmt"
	"studymate_backend/internal/config"
	"studymate_backend/internal/model"
	"studymate_backend/internal/quizgen"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/state"
	"studymate_backend/internal/util"
	"studymate_backend/pkg/logger"
	"studymate_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// maxAssessmentItems 单次生成的题目数量上限
const maxAssessmentItems = 50

type AssessmentService struct {
	State     *state.AppState
	Builder   *quizgen.Builder
	persister *statePersister

	// Config 返回当前生效的配置,配置热加载后取到的就是新值
	Config func() *config.Config
}

func NewAssessmentService(
	appState *state.AppState,
	stateRepo *repository.StateRepository,
	builder *quizgen.Builder,
	cfg func() *config.Config,
) *AssessmentService {
	return &AssessmentService{
		State:     appState,
		Builder:   builder,
		persister: &statePersister{repo: stateRepo},
		Config:    cfg,
	}
}

// Generate 基于指定文档生成一份测验并入库。
// count 不传或非正时取配置的默认题目数。
func (s *AssessmentService) Generate(ctx context.Context, documentID int64, kind model.ItemKind, count int) (model.Assessment, error) {
	if !kind.Valid() {
		return model.Assessment{}, fmt.Errorf("unsupported item kind %q", kind)
	}

	doc, ok := s.State.DocumentByID(documentID)
	if !ok {
		return model.Assessment{}, util.ErrDocumentNotFound
	}

	if count <= 0 {
		count = s.Config().Quiz.DefaultItems
	}
	if count > maxAssessmentItems {
		count = maxAssessmentItems
	}

	assessment := s.Builder.Build(doc, kind, count)

	snapshot := s.State.AddAssessment(assessment)
	s.persister.assessments(ctx, snapshot)
	monitoring.AssessmentsGenerated.WithLabelValues(string(kind)).Inc()

	logger.Log.Info("Assessment generated",
		zap.Int64("assessmentId", assessment.ID),
		zap.Int64("documentId", doc.ID),
		zap.String("kind", string(kind)),
		zap.Int("items", len(assessment.Items)),
	)

	return assessment, nil
}

func (s *AssessmentService) List() []model.Assessment {
	return s.State.Assessments()
}

func (s *AssessmentService) Get(id int64) (model.Assessment, error) {
	assessment, ok := s.State.AssessmentByID(id)
	if !ok {
		return model.Assessment{}, util.ErrAssessmentNotFound
	}
	return assessment, nil
}
