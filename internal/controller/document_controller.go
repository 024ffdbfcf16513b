package controller

import (
	"errors"
	"io"
	"studymate_backend/internal/service"
	"studymate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// maxUploadSize 单个上传文件上限 10MB
const maxUploadSize = 10 << 20

type DocumentController struct {
	DocumentService *service.DocumentService
}

func NewDocumentController(documentService *service.DocumentService) *DocumentController {
	return &DocumentController{DocumentService: documentService}
}

// @Summary 上传学习资料
// @Description 上传一份学习资料,文本直接入库,PDF 存占位内容并返回提示
// @Tags 文档
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "学习资料文件"
// @Success 201 {object} util.Response{data=service.UploadResult}
// @Router /api/documents/upload [post]
func (c *DocumentController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if file.Size > maxUploadSize {
		util.BadRequest(ctx, "file exceeds 10MB limit")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	result := c.DocumentService.Upload(ctx.Request.Context(), file.Filename, data)
	util.Created(ctx, result)
}

// @Summary 获取资料列表
// @Description 返回全部已上传的学习资料
// @Tags 文档
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/documents [get]
func (c *DocumentController) List(ctx *gin.Context) {
	util.Success(ctx, c.DocumentService.List())
}

// @Summary 获取单份资料
// @Description 按 ID 返回一份学习资料
// @Tags 文档
// @Produce json
// @Param id path int true "资料ID"
// @Success 200 {object} util.Response
// @Router /api/documents/{id} [get]
func (c *DocumentController) Get(ctx *gin.Context) {
	id := util.ParseID(ctx.Param("id"))

	doc, err := c.DocumentService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrDocumentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, doc)
}

// @Summary 清空资料
// @Description 删除全部已上传的学习资料
// @Tags 文档
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/documents [delete]
func (c *DocumentController) Clear(ctx *gin.Context) {
	c.DocumentService.Clear(ctx.Request.Context())
	util.Success(ctx, gin.H{"message": "All documents cleared"})
}
