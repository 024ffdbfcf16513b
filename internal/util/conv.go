package util

import (
	"strconv"
)

// ParseID 将路径参数转换为数字 ID,解析失败时返回 0,由后续查询自然落空
func ParseID(s string) int64 {
	id, _ := strconv.ParseInt(s, 10, 64)
	return id
}
