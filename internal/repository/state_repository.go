package repository

import (
	"context"
	"encoding/json"
	"errors"
	"studymate_backend/internal/model"
)

// 三个集合各占一个固定键
const (
	keyProfile     = "profile"
	keyDocuments   = "documents"
	keyAssessments = "assessments"
)

// StateRepository 负责三个集合的整体读写:
// 档案、文档列表、测验列表各自序列化为一个 JSON 值,变更时全量覆盖。
type StateRepository struct {
	Store KVStore
}

func NewStateRepository(store KVStore) *StateRepository {
	return &StateRepository{Store: store}
}

// load 读取并反序列化一个键,键不存在时保持 out 零值
func (r *StateRepository) load(ctx context.Context, key string, out interface{}) error {
	data, err := r.Store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (r *StateRepository) save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Store.Set(ctx, key, data)
}

func (r *StateRepository) LoadProfile(ctx context.Context) (model.Profile, error) {
	var profile model.Profile
	err := r.load(ctx, keyProfile, &profile)
	return profile, err
}

func (r *StateRepository) SaveProfile(ctx context.Context, profile model.Profile) error {
	return r.save(ctx, keyProfile, profile)
}

func (r *StateRepository) LoadDocuments(ctx context.Context) ([]model.Document, error) {
	var documents []model.Document
	err := r.load(ctx, keyDocuments, &documents)
	return documents, err
}

func (r *StateRepository) SaveDocuments(ctx context.Context, documents []model.Document) error {
	return r.save(ctx, keyDocuments, documents)
}

func (r *StateRepository) LoadAssessments(ctx context.Context) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.load(ctx, keyAssessments, &assessments)
	return assessments, err
}

func (r *StateRepository) SaveAssessments(ctx context.Context, assessments []model.Assessment) error {
	return r.save(ctx, keyAssessments, assessments)
}

// Ping 检查存储后端连通性,用于健康检查
func (r *StateRepository) Ping(ctx context.Context) error {
	return r.Store.Ping(ctx)
}
