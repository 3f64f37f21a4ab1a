package requests

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"

	"tcac/app/models/settings"
)

// SettingsRequest 门户设置的完整请求体
// PaymentDeadline 传 RFC3339 字符串，空串表示不设截止时间
type SettingsRequest struct {
	PortalRegistrationOpen bool   `json:"portal_registration_open"`
	RegistrationMessage    string `json:"registration_message"`
	PaymentPortalOpen      bool   `json:"payment_portal_open"`
	PaymentDeadline        string `json:"payment_deadline"`
	PaymentClosedMessage   string `json:"payment_closed_message"`
	UpdatedBy              string `json:"updated_by" valid:"updated_by"`
}

// ToSetting 转换为模型，截止时间只做类型转换不做业务校验
func (r *SettingsRequest) ToSetting() (*settings.Setting, error) {
	var deadline *time.Time
	if r.PaymentDeadline != "" {
		t, err := time.Parse(time.RFC3339, r.PaymentDeadline)
		if err != nil {
			return nil, err
		}
		deadline = &t
	}

	return &settings.Setting{
		PortalRegistrationOpen: r.PortalRegistrationOpen,
		RegistrationMessage:    r.RegistrationMessage,
		PaymentPortalOpen:      r.PaymentPortalOpen,
		PaymentDeadline:        deadline,
		PaymentClosedMessage:   r.PaymentClosedMessage,
	}, nil
}

// ValidateSettings 验证设置请求
func ValidateSettings(c *gin.Context) (*SettingsRequest, error) {
	rules := govalidator.MapData{
		"updated_by": []string{"required"},
	}

	messages := govalidator.MapData{
		"updated_by": []string{
			"required:修改人不能为空",
		},
	}

	req, err := ValidateRequest[SettingsRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	if _, err := req.ToSetting(); err != nil {
		return nil, singleError("payment_deadline", "截止时间必须是 RFC3339 格式")
	}

	return &req, nil
}
