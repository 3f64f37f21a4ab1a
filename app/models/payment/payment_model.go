// Package payment 缴费记录模型
package payment

import (
	"time"
)

// Payment 缴费记录模型
// 由用户端提交创建，管理员审核后进入终态，本流程不做删除
type Payment struct {
	ID              uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNo         string     `gorm:"type:varchar(64);uniqueIndex" json:"order_no"`
	UserID          string     `gorm:"type:varchar(36);index" json:"user_id"`
	Provider        string     `gorm:"type:varchar(20)" json:"provider"`     // offline / wechat / alipay
	Amount          int64      `gorm:"" json:"amount"`                       // 金额，单位：分
	ReceiptURL      string     `gorm:"type:text" json:"receipt_url"`         // 凭证地址，线上支付时为空
	TransactionDate *time.Time `gorm:"" json:"transaction_date"`             // 交易发生时间
	Status          string     `gorm:"type:varchar(20);index" json:"status"` // pending / approved / rejected
	AdminComment    string     `gorm:"type:text" json:"admin_comment"`       // 审核意见，仅随审核动作写入
	DecidedBy       string     `gorm:"type:varchar(64)" json:"decided_by"`   // 审核人
	DecidedAt       *time.Time `gorm:"" json:"decided_at"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"" json:"updated_at"`
}

// TableName 指定表名
func (Payment) TableName() string {
	return "payments"
}
