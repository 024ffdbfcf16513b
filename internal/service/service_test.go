package service

import (
	"os"
	"studymate_backend/internal/config"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/state"
	"studymate_backend/pkg/logger"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type testDeps struct {
	State   *state.AppState
	KV      *repository.MemoryKV
	Repo    *repository.StateRepository
	Storage *StorageService
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()

	kv := repository.NewMemoryKV()
	return &testDeps{
		State:   state.NewAppState(),
		KV:      kv,
		Repo:    repository.NewStateRepository(kv),
		Storage: NewStorageService(cfg),
	}
}

func testConfig() func() *config.Config {
	cfg := &config.Config{}
	cfg.Quiz.DefaultItems = 5
	return func() *config.Config { return cfg }
}

// tickingClock 每次调用前进 1ms,避免同一毫秒生成重复 ID
func tickingClock(start time.Time) func() time.Time {
	var n int64
	return func() time.Time {
		tick := atomic.AddInt64(&n, 1)
		return start.Add(time.Duration(tick) * time.Millisecond)
	}
}
