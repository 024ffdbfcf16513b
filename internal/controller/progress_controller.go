package controller

import (
	"studymate_backend/internal/service"
	"studymate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary 获取进度序列
// @Description 返回进度图表的月度序列
// @Tags 进度
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) GetSeries(ctx *gin.Context) {
	util.Success(ctx, gin.H{"series": c.ProgressService.Series()})
}

// @Summary 模拟完成学习
// @Description 随机提升一个月份的进度分数并返回更新后的序列
// @Tags 进度
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/simulate [post]
func (c *ProgressController) Simulate(ctx *gin.Context) {
	util.Success(ctx, gin.H{"series": c.ProgressService.SimulateCompletion()})
}
