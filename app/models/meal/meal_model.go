// Package meal 餐食模型
package meal

import (
	"tcac/app/models"
)

// Meal 餐食模型，管理后台维护的每日用餐安排
type Meal struct {
	ID    uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(120)" json:"name"`
	Type  string `gorm:"type:varchar(20);index" json:"type"` // breakfast / lunch / dinner
	DayID uint64 `gorm:"index" json:"day_id"`
	Menu  string `gorm:"type:text" json:"menu"`

	models.CommonTimestampsField
}

// TableName 表名
func (Meal) TableName() string {
	return "meals"
}
