// Package activity 活动模型
package activity

import (
	"time"

	"tcac/app/models"
)

// Activity 活动模型，管理后台维护的日程活动项
type Activity struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"type:varchar(120);index" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Location    string     `gorm:"type:varchar(120)" json:"location"`
	StartAt     *time.Time `gorm:"index" json:"start_at"`
	EndAt       *time.Time `gorm:"" json:"end_at"`

	models.CommonTimestampsField
}

// TableName 表名
func (Activity) TableName() string {
	return "activities"
}
