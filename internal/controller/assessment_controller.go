package controller

import (
	"errors"
	"studymate_backend/internal/model"
	"studymate_backend/internal/service"
	"studymate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

type GenerateAssessmentRequest struct {
	DocumentID int64  `json:"documentId" binding:"required"`
	Kind       string `json:"kind" binding:"required,oneof=multiple-choice short-answer"`
	Count      int    `json:"count"`
}

// @Summary 生成测验
// @Description 基于指定文档生成一份选择题或简答题测验
// @Tags 测验
// @Accept json
// @Produce json
// @Param request body GenerateAssessmentRequest true "生成参数"
// @Success 201 {object} util.Response{data=model.Assessment}
// @Router /api/assessments/generate [post]
func (c *AssessmentController) Generate(ctx *gin.Context) {
	var req GenerateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.AssessmentService.Generate(
		ctx.Request.Context(),
		req.DocumentID,
		model.ItemKind(req.Kind),
		req.Count,
	)
	if err != nil {
		if errors.Is(err, util.ErrDocumentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, assessment)
}

// @Summary 获取测验列表
// @Description 返回全部已生成的测验
// @Tags 测验
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessments [get]
func (c *AssessmentController) List(ctx *gin.Context) {
	util.Success(ctx, c.AssessmentService.List())
}

// @Summary 获取单份测验
// @Description 按 ID 返回一份测验
// @Tags 测验
// @Produce json
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/assessments/{id} [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	id := util.ParseID(ctx.Param("id"))

	assessment, err := c.AssessmentService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, assessment)
}
