package app

import (
	"studymate_backend/docs"
	"studymate_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		a.registerDocumentRoutes(api, c)
		a.registerAssessmentRoutes(api, c)
		a.registerProfileRoutes(api, c)

		api.GET("/suggestions", c.suggestion.GetSuggestions)

		// 进度曲线与模拟完成
		api.GET("/progress", c.progress.GetSeries)
		api.POST("/progress/simulate", c.progress.Simulate)

		api.GET("/dashboard", c.dashboard.GetDashboard)
	}
}

func (a *App) registerDocumentRoutes(rg *gin.RouterGroup, c *controllers) {
	documents := rg.Group("/documents")
	{
		documents.POST("/upload", c.document.Upload)
		documents.GET("", c.document.List)
		documents.GET("/:id", c.document.Get)

		// 清空接口面向运维,前端不暴露
		documents.DELETE("", c.document.Clear)
	}
}

func (a *App) registerAssessmentRoutes(rg *gin.RouterGroup, c *controllers) {
	assessments := rg.Group("/assessments")
	{
		assessments.POST("/generate", c.assessment.Generate)
		assessments.GET("", c.assessment.List)
		assessments.GET("/:id", c.assessment.Get)
	}
}

func (a *App) registerProfileRoutes(rg *gin.RouterGroup, c *controllers) {
	profile := rg.Group("/profile")
	{
		profile.GET("", c.profile.Get)
		profile.PUT("", c.profile.Replace)
		profile.PATCH("", c.profile.Patch)
		profile.DELETE("", c.profile.Reset)
	}
}
