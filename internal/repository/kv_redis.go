package repository

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// 状态键统一加前缀,避免与其他业务键冲突
const stateKeyPrefix = "studymate:state:"

// RedisKV 基于 Redis 的键值存储
type RedisKV struct {
	Client *redis.Client
	Prefix string
}

func (s *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.Client.Get(ctx, s.Prefix+key).Result()
	if err == redis.Nil {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(val), nil
}

func (s *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	// 状态数据不设过期时间
	return s.Client.Set(ctx, s.Prefix+key, value, 0).Err()
}

func (s *RedisKV) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}
