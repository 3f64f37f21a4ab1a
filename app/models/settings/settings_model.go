// Package settings 站点设置单例模型
package settings

import (
	"time"
)

// Setting 门户设置模型
// 全站仅存在一条有效记录，由启动迁移负责初始化
type Setting struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	PortalRegistrationOpen bool       `gorm:"default:true" json:"portal_registration_open"` // 报名通道开关
	RegistrationMessage    string     `gorm:"type:text" json:"registration_message"`        // 报名关闭时的提示文案
	PaymentPortalOpen      bool       `gorm:"default:true" json:"payment_portal_open"`      // 缴费通道开关
	PaymentDeadline        *time.Time `gorm:"index" json:"payment_deadline"`                // 缴费截止时间，可为空
	PaymentClosedMessage   string     `gorm:"type:text" json:"payment_closed_message"`      // 缴费关闭时的提示文案

	UpdatedBy string    `gorm:"type:varchar(64)" json:"updated_by"` // 最后修改人
	CreatedAt time.Time `gorm:"" json:"created_at"`
	UpdatedAt time.Time `gorm:"" json:"updated_at"`
}

// TableName 指定表名
func (Setting) TableName() string {
	return "portal_settings"
}
