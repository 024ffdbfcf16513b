package controller

import (
	"studymate_backend/internal/service"
	"studymate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct {
	SuggestionService *service.SuggestionService
}

func NewSuggestionController(suggestionService *service.SuggestionService) *SuggestionController {
	return &SuggestionController{SuggestionService: suggestionService}
}

// @Summary 获取学习建议
// @Description 按当前档案和文档数量产出学习建议,规则固定顺序逐条匹配
// @Tags 建议
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/suggestions [get]
func (c *SuggestionController) GetSuggestions(ctx *gin.Context) {
	util.Success(ctx, gin.H{"suggestions": c.SuggestionService.GetSuggestions()})
}
