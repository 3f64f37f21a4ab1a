// Package migrations 数据表迁移
package migrations

import (
	"tcac/app/models/activity"
	"tcac/app/models/day"
	"tcac/app/models/meal"
	"tcac/app/models/payment"
	"tcac/app/models/paymentrequest"
	"tcac/app/models/settings"
	"tcac/app/models/user"
)

// RegisterTables 返回需要迁移的表的模型列表
func RegisterTables() []interface{} {
	return []interface{}{
		&user.User{},
		&settings.Setting{},
		&payment.Payment{},
		&paymentrequest.PaymentRequest{},
		&activity.Activity{},
		&meal.Meal{},
		&day.Day{},
	}
}
