package requests

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"

	"tcac/app/models/payment"
)

// PaymentDecisionRequest 审核缴费记录的请求体
// UpdatedAt 是客户端读取列表时看到的版本号，用于拒绝过期写入
type PaymentDecisionRequest struct {
	PaymentID    uint64 `json:"payment_id" valid:"payment_id"`
	Status       string `json:"status" valid:"status"`
	AdminComment string `json:"admin_comment"`
	UpdatedAt    string `json:"updated_at"`

	// 下游通知需要回传的冗余字段，本服务不校验其一致性
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
}

// SeenUpdatedAt 解析版本时间戳，未传时返回零值（跳过版本检查）
func (r *PaymentDecisionRequest) SeenUpdatedAt() (time.Time, error) {
	if r.UpdatedAt == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, r.UpdatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("解析 updated_at 失败: %w", err)
	}
	return t, nil
}

// ValidatePaymentDecision 验证审核请求
func ValidatePaymentDecision(c *gin.Context) (*PaymentDecisionRequest, error) {
	rules := govalidator.MapData{
		"payment_id": []string{"required"},
		"status":     []string{"required", "in:approved,rejected"},
	}

	messages := govalidator.MapData{
		"payment_id": []string{
			"required:缴费记录 ID 不能为空",
		},
		"status": []string{
			"required:必须选择审核结果",
			"in:审核结果必须是 approved 或 rejected",
		},
	}

	req, err := ValidateRequest[PaymentDecisionRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	// govalidator 的 required 对数值零值不可靠，补充校验
	if req.PaymentID == 0 {
		return nil, singleError("payment_id", "缴费记录 ID 不能为空")
	}
	if !payment.ValidDecision(req.Status) {
		return nil, singleError("status", "审核结果必须是 approved 或 rejected")
	}

	if _, err := req.SeenUpdatedAt(); err != nil {
		return nil, singleError("updated_at", "updated_at 必须是 RFC3339 格式的时间")
	}

	return &req, nil
}
