// Package day 活动日模型
package day

import (
	"time"

	"tcac/app/models"
)

// Day 活动日模型，日程表中的一天
type Day struct {
	ID    uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string     `gorm:"type:varchar(120)" json:"title"`
	Date  *time.Time `gorm:"index" json:"date"`
	Theme string     `gorm:"type:varchar(255)" json:"theme"`

	models.CommonTimestampsField
}

// TableName 表名
func (Day) TableName() string {
	return "days"
}
