package repositories

import (
	"context"

	"gorm.io/gorm"

	"tcac/app/models/paymentrequest"
	"tcac/pkg/database"
)

// PaymentRequestRepository 缴费申诉仓库
type PaymentRequestRepository struct {
	db *gorm.DB
}

// NewPaymentRequestRepository 创建仓库实例
func NewPaymentRequestRepository() *PaymentRequestRepository {
	return &PaymentRequestRepository{
		db: database.DB,
	}
}

// Create 创建申诉记录
func (r *PaymentRequestRepository) Create(ctx context.Context, req *paymentrequest.PaymentRequest) error {
	if req.Status == "" {
		req.Status = "open"
	}
	return r.db.WithContext(ctx).Create(req).Error
}

// ListByUser 获取用户的申诉记录，管理端查看时使用
func (r *PaymentRequestRepository) ListByUser(ctx context.Context, userID string) ([]paymentrequest.PaymentRequest, error) {
	var requests []paymentrequest.PaymentRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}
