package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// RegisterRequest 用户报名请求体
type RegisterRequest struct {
	FirstName string `json:"first_name" valid:"first_name"`
	LastName  string `json:"last_name" valid:"last_name"`
	Email     string `json:"email" valid:"email"`
}

// ValidateRegister 验证报名请求
func ValidateRegister(c *gin.Context) (*RegisterRequest, error) {
	rules := govalidator.MapData{
		"first_name": []string{"required", "max:50"},
		"last_name":  []string{"required", "max:50"},
		"email":      []string{"required", "email"},
	}

	messages := govalidator.MapData{
		"first_name": []string{
			"required:名字不能为空",
			"max:名字长度不能超过 50 个字符",
		},
		"last_name": []string{
			"required:姓氏不能为空",
			"max:姓氏长度不能超过 50 个字符",
		},
		"email": []string{
			"required:邮箱不能为空",
			"email:邮箱格式不正确",
		},
	}

	return validatePtr[RegisterRequest](c, rules, messages)
}

// validatePtr 泛型辅助，返回指针以保持各验证函数签名一致
func validatePtr[T any](c *gin.Context, rules govalidator.MapData, messages govalidator.MapData) (*T, error) {
	req, err := ValidateRequest[T](c, rules, messages)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
