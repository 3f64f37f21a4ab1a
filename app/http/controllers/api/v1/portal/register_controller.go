// Package portal 用户端接口
package portal

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tcac/app/models/user"
	"tcac/app/repositories"
	"tcac/app/requests"
	"tcac/pkg/response"
)

// RegisterController 报名控制器
type RegisterController struct {
	userRepo     *repositories.UserRepository
	settingsRepo *repositories.SettingsRepository
}

// NewRegisterController 创建报名控制器
func NewRegisterController() *RegisterController {
	return &RegisterController{
		userRepo:     repositories.NewUserRepository(),
		settingsRepo: repositories.NewSettingsRepository(),
	}
}

// Store 提交报名
// POST /api/register
// 报名通道关闭时返回 403，响应消息使用配置里的提示语
func (rc *RegisterController) Store(c *gin.Context) {
	setting, err := rc.settingsRepo.Get(c.Request.Context())
	if err != nil {
		response.Abort500(c, "获取门户配置失败")
		return
	}
	if setting.RegistrationClosed() {
		response.Abort403(c, setting.RegistrationMessage)
		return
	}

	request, err := requests.ValidateRegister(c)
	if err != nil {
		var verr requests.ValidationError
		if errors.As(err, &verr) {
			response.ValidationError(c, verr.Map())
			return
		}
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	newUser := user.User{
		ID:        uuid.New().String(),
		Email:     request.Email,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Role:      user.RoleUser,
	}
	if err := rc.userRepo.Create(c.Request.Context(), &newUser); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			response.Abort400(c, "该邮箱已报名")
			return
		}
		response.Abort500(c, "报名失败")
		return
	}

	response.Created(c, gin.H{"user": newUser})
}
