package model

import (
	"encoding/json"
	"time"
)

// StateEntry mysql 状态后端的键值行。每个键保存一份整体序列化的集合，
// 与其他后端（redis/file/memory）共用同一套三键布局。
type StateEntry struct {
	Key       string          `gorm:"primaryKey;size:64" json:"key"`
	Value     json.RawMessage `gorm:"type:json" json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (StateEntry) TableName() string {
	return "state_entries"
}
