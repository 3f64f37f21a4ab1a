package notify

import "time"

// Config 通知服务配置
type Config struct {
	URL        string        // 下游通知服务的 webhook 地址
	APIKey     string        // Bearer 凭证，可为空
	Timeout    time.Duration // 单次请求超时
	MaxRetries int           // 失败重试次数
}

// DecisionEvent 审核结果事件
// 下游负责余额调整和邮件通知，本服务只投递事实
type DecisionEvent struct {
	PaymentID    uint64    `json:"payment_id"`
	UserID       string    `json:"user_id"`
	Amount       int64     `json:"amount"`
	Status       string    `json:"status"`
	AdminComment string    `json:"admin_comment"`
	DecidedBy    string    `json:"decided_by"`
	DecidedAt    time.Time `json:"decided_at"`
}
