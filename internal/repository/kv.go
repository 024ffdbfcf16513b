package repository

import (
	"context"
	"errors"
	"studymate_backend/internal/config"
	"studymate_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ErrKeyNotFound 表示存储中不存在对应的键
var ErrKeyNotFound = errors.New("state key not found")

// KVStore 定义通用键值状态存储接口。
// 每个集合占用一个固定键,值为整体序列化后的 JSON,每次变更全量覆盖。
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}

// NewKVStore 根据配置选择状态存储后端。
// 后端不可用(目录创建失败、连接未初始化)时退回内存存储,服务仍可启动。
func NewKVStore(cfg *config.Config, db *gorm.DB, rdb *redis.Client) KVStore {
	switch cfg.State.Backend {
	case util.StateBackendFile:
		store, err := NewFileKV(cfg.State.FilePath)
		if err == nil {
			return store
		}
	case util.StateBackendRedis:
		if rdb != nil {
			return &RedisKV{Client: rdb, Prefix: stateKeyPrefix}
		}
	case util.StateBackendMySQL:
		if db != nil {
			return &MySQLKV{DB: db}
		}
	}
	return NewMemoryKV()
}
