package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tcac/app/repositories"
	"tcac/app/requests"
	"tcac/pkg/response"
)

// SettingsController 门户配置控制器
// 配置是单例，启动时已写入默认值，这里只做读取和修改
type SettingsController struct {
	settingsRepo *repositories.SettingsRepository
}

// NewSettingsController 创建门户配置控制器
func NewSettingsController() *SettingsController {
	return &SettingsController{
		settingsRepo: repositories.NewSettingsRepository(),
	}
}

// Show 获取当前门户配置
// GET /api/settings
func (sc *SettingsController) Show(c *gin.Context) {
	setting, err := sc.settingsRepo.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, repositories.ErrSettingsNotFound) {
			response.Abort404(c, "门户配置不存在")
			return
		}
		response.Abort500(c, "获取门户配置失败")
		return
	}

	response.Data(c, gin.H{"settings": setting})
}

// Store 初始化门户配置
// POST /api/settings
// 配置已存在时直接返回现有记录，保证单例
func (sc *SettingsController) Store(c *gin.Context) {
	existing, err := sc.settingsRepo.Get(c.Request.Context())
	if err == nil {
		response.Data(c, gin.H{"settings": existing})
		return
	}
	if !errors.Is(err, repositories.ErrSettingsNotFound) {
		response.Abort500(c, "获取门户配置失败")
		return
	}

	created, err := sc.settingsRepo.CreateDefault(c.Request.Context())
	if err != nil {
		response.Abort500(c, "初始化门户配置失败")
		return
	}

	response.Created(c, gin.H{"settings": created})
}

// Update 修改门户配置
// PUT /api/settings
func (sc *SettingsController) Update(c *gin.Context) {
	request, err := requests.ValidateSettings(c)
	if err != nil {
		var verr requests.ValidationError
		if errors.As(err, &verr) {
			response.ValidationError(c, verr.Map())
			return
		}
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	patch, err := request.ToSetting()
	if err != nil {
		response.BadRequest(c, err, "缴费截止时间格式不正确")
		return
	}

	updated, err := sc.settingsRepo.Update(c.Request.Context(), patch, request.UpdatedBy)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingsNotFound) {
			response.Abort404(c, "门户配置不存在")
			return
		}
		response.Abort500(c, "更新门户配置失败")
		return
	}

	response.Data(c, gin.H{"settings": updated})
}
