package util

import (
	"net/http"
	"path/filepath"
	"strings"
)

// DetectMimeType 根据内容前 512 字节探测 MIME 类型
func DetectMimeType(data []byte) string {
	if len(data) > 512 {
		data = data[:512]
	}
	return http.DetectContentType(data)
}

// IsPDF 判断上传文件是否按 PDF 处理(扩展名或探测类型命中即算)
func IsPDF(filename, mimeType string) bool {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return true
	}
	return mimeType == MimePDF || strings.HasPrefix(mimeType, MimePDF+";")
}
