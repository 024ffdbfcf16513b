package state

import (
	"studymate_backend/internal/model"
	"sync"
)

// AppState 会话内全部用户数据的权威内存副本：档案、已上传文档、
// 已生成测验与进度序列。处理器并发访问，所有读写都过锁；
// 变更方法返回新快照，供调用方拿去持久化。
type AppState struct {
	mu          sync.RWMutex
	profile     model.Profile
	documents   []model.Document
	assessments []model.Assessment
	progress    []model.ProgressPoint
}

// NewAppState 创建带默认进度序列种子的状态
func NewAppState() *AppState {
	return &AppState{
		progress: model.DefaultProgressSeries(),
	}
}

// Hydrate 用持久化值整体替换档案、文档与测验。仅在启动、开始服务前调用一次。
func (s *AppState) Hydrate(profile model.Profile, documents []model.Document, assessments []model.Assessment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
	s.documents = append([]model.Document(nil), documents...)
	s.assessments = append([]model.Assessment(nil), assessments...)
}

func (s *AppState) Profile() model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SetProfile 整体替换档案
func (s *AppState) SetProfile(p model.Profile) model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	return s.profile
}

// UpdateProfile 应用 upd 中的非 nil 字段并返回结果档案
func (s *AppState) UpdateProfile(upd model.ProfileUpdate) model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	upd.Apply(&s.profile)
	return s.profile
}

// ResetProfile 清空档案的全部字段
func (s *AppState) ResetProfile() model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = model.Profile{}
	return s.profile
}

func (s *AppState) Documents() []model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Document(nil), s.documents...)
}

func (s *AppState) DocumentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// DocumentByID 按 ID 查找文档，返回是否存在
func (s *AppState) DocumentByID(id int64) (model.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.documents {
		if d.ID == id {
			return d, true
		}
	}
	return model.Document{}, false
}

// AddDocument 追加文档并返回完整列表快照
func (s *AppState) AddDocument(d model.Document) []model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, d)
	return append([]model.Document(nil), s.documents...)
}

// ClearDocuments 清空全部文档。测验仍保留其文档引用，
// 对已清空文档的查询按未找到处理。
func (s *AppState) ClearDocuments() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = nil
}

func (s *AppState) Assessments() []model.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Assessment(nil), s.assessments...)
}

// AssessmentByID 按 ID 查找测验，返回是否存在
func (s *AppState) AssessmentByID(id int64) (model.Assessment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.assessments {
		if a.ID == id {
			return a, true
		}
	}
	return model.Assessment{}, false
}

// AddAssessment 追加测验并返回完整列表快照
func (s *AppState) AddAssessment(a model.Assessment) []model.Assessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessments = append(s.assessments, a)
	return append([]model.Assessment(nil), s.assessments...)
}

func (s *AppState) Progress() []model.ProgressPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ProgressPoint(nil), s.progress...)
}

// BumpProgress 给 index 处的分数加 delta，封顶 model.MaxProgressScore。
// 越界 index 为空操作。
func (s *AppState) BumpProgress(index, delta int) []model.ProgressPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index >= 0 && index < len(s.progress) {
		score := s.progress[index].Score + delta
		if score > model.MaxProgressScore {
			score = model.MaxProgressScore
		}
		s.progress[index].Score = score
	}
	return append([]model.ProgressPoint(nil), s.progress...)
}
