package requests

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// PaymentEscalationRequest 缴费申诉请求体
type PaymentEscalationRequest struct {
	UserID  string `json:"user_id" valid:"user_id"`
	Message string `json:"message" valid:"message"`
}

// ValidatePaymentEscalation 验证申诉请求
// message 去除首尾空白后不能为空
func ValidatePaymentEscalation(c *gin.Context) (*PaymentEscalationRequest, error) {
	rules := govalidator.MapData{
		"user_id": []string{"required"},
		"message": []string{"required"},
	}

	messages := govalidator.MapData{
		"user_id": []string{
			"required:用户 ID 不能为空",
		},
		"message": []string{
			"required:申诉内容不能为空",
		},
	}

	req, err := ValidateRequest[PaymentEscalationRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return nil, singleError("message", "申诉内容不能为空")
	}

	return &req, nil
}
