package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// 状态持久化后端
const (
	StateBackendMemory = "memory"
	StateBackendFile   = "file"
	StateBackendRedis  = "redis"
	StateBackendMySQL  = "mysql"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 文件上传相关常量
const (
	MimeText = "text/"
	MimePDF  = "application/pdf"
)
