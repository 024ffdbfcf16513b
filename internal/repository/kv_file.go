package repository

import (
	"context"
	"os"
	"path/filepath"
)

// FileKV 基于本地目录的键值存储,每个键对应一个 JSON 文件
type FileKV struct {
	Dir string
}

func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileKV{Dir: dir}, nil
}

func (s *FileKV) path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

func (s *FileKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FileKV) Set(ctx context.Context, key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0644)
}

func (s *FileKV) Ping(ctx context.Context) error {
	_, err := os.Stat(s.Dir)
	return err
}
