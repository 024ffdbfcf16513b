package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/state"
	"studymate_backend/internal/util"
	"studymate_backend/pkg/logger"
	"studymate_backend/pkg/monitoring"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PDFNotice 上传 PDF 时返回给前端的提示,PDF 内容不做解析
const PDFNotice = "PDF files are stored but not parsed; quiz generation will use placeholder content."

type DocumentService struct {
	State     *state.AppState
	Storage   *StorageService
	persister *statePersister

	// Now 可注入,测试中用固定时钟保证 ID 可预期
	Now func() time.Time
}

func NewDocumentService(appState *state.AppState, stateRepo *repository.StateRepository, storage *StorageService) *DocumentService {
	return &DocumentService{
		State:     appState,
		Storage:   storage,
		persister: &statePersister{repo: stateRepo},
		Now:       time.Now,
	}
}

// UploadResult 上传响应,Notice 仅在内容被替换为占位文本时返回
type UploadResult struct {
	Document model.Document `json:"document"`
	Notice   string         `json:"notice,omitempty"`
}

// Upload 登记一份学习资料。文本类型直接解码,PDF 存入固定占位内容,
// 其他类型一律按文本尽力解码。原始文件同时归档到对象存储。
func (s *DocumentService) Upload(ctx context.Context, filename string, data []byte) UploadResult {
	now := s.Now()
	mimeType := util.DetectMimeType(data)

	doc := model.Document{
		ID:         now.UnixMilli(),
		Name:       filename,
		Size:       int64(len(data)),
		UploadedAt: now,
	}

	notice := ""
	if util.IsPDF(filename, mimeType) {
		doc.Content = model.PDFStubContent
		doc.Stub = true
		notice = PDFNotice
		monitoring.DocumentUploads.WithLabelValues("stub").Inc()
	} else {
		// 非 PDF 一律按文本尽力解码,指标上区分真文本和其他类型
		doc.Content = string(data)
		label := "text"
		if !strings.HasPrefix(mimeType, util.MimeText) {
			label = "binary"
		}
		monitoring.DocumentUploads.WithLabelValues(label).Inc()
	}

	s.archive(ctx, filename, data, mimeType)

	snapshot := s.State.AddDocument(doc)
	s.persister.documents(ctx, snapshot)

	logger.Log.Info("Document uploaded",
		zap.Int64("documentId", doc.ID),
		zap.String("name", doc.Name),
		zap.Int64("size", doc.Size),
		zap.Bool("stub", doc.Stub),
	)

	return UploadResult{Document: doc, Notice: notice}
}

// archive 把原始文件归档到对象存储,按上传日期分目录,失败只记日志,不影响上传结果
func (s *DocumentService) archive(ctx context.Context, filename string, data []byte, contentType string) {
	objectName := fmt.Sprintf("documents/%s/%s-%s",
		s.Now().Format(util.DateFormat), uuid.New().String(), filepath.Base(filename))
	if _, err := s.Storage.Upload(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		logger.Log.Warn("归档原始文件失败", zap.String("filename", filename), zap.Error(err))
	}
}

func (s *DocumentService) List() []model.Document {
	return s.State.Documents()
}

func (s *DocumentService) Get(id int64) (model.Document, error) {
	doc, ok := s.State.DocumentByID(id)
	if !ok {
		return model.Document{}, util.ErrDocumentNotFound
	}
	return doc, nil
}

// Clear 清空全部文档并覆盖持久化。已生成的测验保留,其文档引用悬空。
func (s *DocumentService) Clear(ctx context.Context) {
	s.State.ClearDocuments()
	s.persister.documents(ctx, []model.Document{})
	logger.Log.Info("All documents cleared")
}
