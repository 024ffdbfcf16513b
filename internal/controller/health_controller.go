package controller

import (
	"net/http"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	StateRepo *repository.StateRepository
	Backend   string
}

func NewHealthController(stateRepo *repository.StateRepository, backend string) *HealthController {
	return &HealthController{StateRepo: stateRepo, Backend: backend}
}

// @Summary 健康检查
// @Description 检查服务和状态存储后端
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// 检查状态存储连通性
	if err := c.StateRepo.Ping(ctx.Request.Context()); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "State store unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"time":   time.Now().Format(util.TimeFormat),
		"components": gin.H{
			"state": gin.H{
				"backend": c.Backend,
				"status":  "up",
			},
		},
	})
}
