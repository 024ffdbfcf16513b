package model

import "time"

// PDFStubContent 未解析的 PDF 文档占位正文（本系统不做真实的 PDF 解析）
const PDFStubContent = "(PDF content is stored as a stub; text extraction is not performed.)"

// Document 用户上传的笔记文档，创建后不可变
// swagger:model Document
type Document struct {
	ID         int64     `json:"id"` // 创建时间戳（毫秒）
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Content    string    `json:"content"`
	UploadedAt time.Time `json:"uploadedAt"`
	Stub       bool      `json:"stub,omitempty"` // true 表示未解析的二进制占位文档
}
