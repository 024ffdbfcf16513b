package database

import (
	"context"
	"fmt"
	"log"
	"studymate_backend/internal/config"
	"time"

	"github.com/go-redis/redis/v8"
)

// InitRedis 建立 Redis 连接并确认可达。状态存储以单键读写为主,连接池不必太大。
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	log.Println("Redis connection established")
	return rdb, nil
}
