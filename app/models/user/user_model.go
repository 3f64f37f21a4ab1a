// Package user 存放用户 Model 相关逻辑
package user

import (
	"tcac/app/models"
)

// 用户角色
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
	RoleRegLead    = "reg-team-lead"
)

// User 用户模型
type User struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email     string `gorm:"unique;type:varchar(255)" json:"email"`
	FirstName string `gorm:"type:varchar(50);index" json:"first_name"`
	LastName  string `gorm:"type:varchar(50);index" json:"last_name"`
	Role      string `gorm:"type:varchar(30);default:user;index" json:"role"`
	Balance   int64  `gorm:"default:0" json:"balance"` // 待缴余额，单位：分，由对账流程维护

	models.CommonTimestampsField
}

// TableName 表名
func (User) TableName() string {
	return "users"
}

// FullName 拼接展示用全名
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsAdmin 检查是否为管理角色
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin || u.Role == RoleRegLead
}
