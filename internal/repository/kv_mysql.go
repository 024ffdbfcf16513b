package repository

import (
	"context"
	"errors"
	"studymate_backend/internal/model"

	"gorm.io/gorm"
)

// MySQLKV 基于 MySQL 的键值存储,state_entries 表每个键一行
type MySQLKV struct {
	DB *gorm.DB
}

func (s *MySQLKV) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.StateEntry
	err := s.DB.WithContext(ctx).Where("`key` = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (s *MySQLKV) Set(ctx context.Context, key string, value []byte) error {
	tx := s.DB.WithContext(ctx)

	var existing model.StateEntry
	err := tx.Where("`key` = ?", key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&model.StateEntry{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&model.StateEntry{}).Where("`key` = ?", key).Update("value", value).Error
}

func (s *MySQLKV) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
