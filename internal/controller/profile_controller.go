package controller

import (
	"studymate_backend/internal/model"
	"studymate_backend/internal/service"
	"studymate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// @Summary 获取档案
// @Description 返回当前用户档案
// @Tags 档案
// @Produce json
// @Success 200 {object} util.Response{data=model.Profile}
// @Router /api/profile [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	util.Success(ctx, c.ProfileService.Get())
}

// @Summary 替换档案
// @Description 整体替换用户档案,未提交的字段置空
// @Tags 档案
// @Accept json
// @Produce json
// @Param profile body model.Profile true "档案"
// @Success 200 {object} util.Response{data=model.Profile}
// @Router /api/profile [put]
func (c *ProfileController) Replace(ctx *gin.Context) {
	var profile model.Profile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.ProfileService.Replace(ctx.Request.Context(), profile))
}

// @Summary 更新档案字段
// @Description 按字段更新档案,未提交的字段保持原值
// @Tags 档案
// @Accept json
// @Produce json
// @Param profile body model.ProfileUpdate true "要更新的字段"
// @Success 200 {object} util.Response{data=model.Profile}
// @Router /api/profile [patch]
func (c *ProfileController) Patch(ctx *gin.Context) {
	var upd model.ProfileUpdate
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.ProfileService.Patch(ctx.Request.Context(), upd))
}

// @Summary 重置档案
// @Description 清空档案全部字段
// @Tags 档案
// @Produce json
// @Success 200 {object} util.Response{data=model.Profile}
// @Router /api/profile [delete]
func (c *ProfileController) Reset(ctx *gin.Context) {
	util.Success(ctx, c.ProfileService.Reset(ctx.Request.Context()))
}
