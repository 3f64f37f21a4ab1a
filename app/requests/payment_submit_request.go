package requests

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"

	"tcac/app/models/payment"
)

// PaymentSubmitRequest 用户提交缴费的请求体
// offline 渠道需要附缴费凭证；wechat / alipay 走在线支付网关
type PaymentSubmitRequest struct {
	UserID          string `json:"user_id" valid:"user_id"`
	Amount          int64  `json:"amount" valid:"amount"`
	Provider        string `json:"provider" valid:"provider"`
	ReceiptURL      string `json:"receipt_url"`
	TransactionDate string `json:"transaction_date"`
	ReturnURL       string `json:"return_url"`
}

// ParsedTransactionDate 解析交易时间，未传时返回 nil
func (r *PaymentSubmitRequest) ParsedTransactionDate() (*time.Time, error) {
	if r.TransactionDate == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, r.TransactionDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ValidatePaymentSubmit 验证缴费提交请求
func ValidatePaymentSubmit(c *gin.Context) (*PaymentSubmitRequest, error) {
	rules := govalidator.MapData{
		"user_id":  []string{"required"},
		"amount":   []string{"required"},
		"provider": []string{"required", "in:offline,wechat,alipay"},
	}

	messages := govalidator.MapData{
		"user_id": []string{
			"required:用户 ID 不能为空",
		},
		"amount": []string{
			"required:金额不能为空",
		},
		"provider": []string{
			"required:支付渠道不能为空",
			"in:支付渠道必须是 offline、wechat 或 alipay",
		},
	}

	req, err := ValidateRequest[PaymentSubmitRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	if req.Amount <= 0 {
		return nil, singleError("amount", "金额必须大于 0")
	}
	if req.Provider == string(payment.ProviderOffline) && req.ReceiptURL == "" {
		return nil, singleError("receipt_url", "线下缴费必须附缴费凭证")
	}
	if _, err := req.ParsedTransactionDate(); err != nil {
		return nil, singleError("transaction_date", "交易时间必须是 RFC3339 格式")
	}

	return &req, nil
}
