// Package paymentrequest 缴费申诉模型
package paymentrequest

import (
	"tcac/app/models"
)

// PaymentRequest 缴费申诉记录
// 用户被截止时间锁定后提交的自由文本说明，由管理员线下处理，
// 本系统只负责创建，不维护后续状态
type PaymentRequest struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string `gorm:"type:varchar(36);index" json:"user_id"`
	Message string `gorm:"type:text" json:"message"`
	Status  string `gorm:"type:varchar(20);default:open" json:"status"` // 始终为 open，处理进度不在本系统维护

	models.CommonTimestampsField
}

// TableName 表名
func (PaymentRequest) TableName() string {
	return "payment_requests"
}
