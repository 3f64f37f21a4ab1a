package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"tcac/app/models/payment"
	"tcac/pkg/database"
)

var (
	// ErrPaymentNotFound 缴费记录不存在
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrAlreadyDecided 记录已进入终态，不允许再次审核
	ErrAlreadyDecided = errors.New("payment already decided")
	// ErrStaleDecision 审核基于过期版本，记录已被他人修改
	ErrStaleDecision = errors.New("payment was modified by someone else")
)

// PaymentFilter 缴费列表筛选条件
type PaymentFilter struct {
	Status string // 精确匹配审核状态，空值表示不筛选
	Search string // 按付款人姓名做大小写不敏感的子串匹配
}

// PaymentRepository 缴费记录仓库
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository 创建仓库实例
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		db: database.DB,
	}
}

// Create 创建缴费记录
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if p.Status == "" {
		p.Status = string(payment.StatusPending)
	}
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByID 根据 ID 获取缴费记录
func (r *PaymentRepository) GetByID(ctx context.Context, id uint64) (*payment.Payment, error) {
	var p payment.Payment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetByOrderNo 根据订单号获取缴费记录
func (r *PaymentRepository) GetByOrderNo(ctx context.Context, orderNo string) (*payment.Payment, error) {
	var p payment.Payment
	err := r.db.WithContext(ctx).Where("order_no = ?", orderNo).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List 按筛选条件分页获取缴费记录
// 姓名搜索连接 users 表，匹配语义为 LOWER LIKE 子串
func (r *PaymentRepository) List(ctx context.Context, filter PaymentFilter, page, pageSize int) ([]payment.Payment, int64, error) {
	var payments []payment.Payment
	var total int64

	query := r.db.WithContext(ctx).Model(&payment.Payment{})

	if filter.Status != "" {
		query = query.Where("payments.status = ?", filter.Status)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("JOIN users ON users.id = payments.user_id").
			Where("LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ?", pattern, pattern)
	}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	err := query.Order("payments.created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&payments).Error

	return payments, total, err
}

// ListByUser 获取用户自己的缴费记录
func (r *PaymentRepository) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]payment.Payment, int64, error) {
	var payments []payment.Payment
	var total int64

	query := r.db.WithContext(ctx).Model(&payment.Payment{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&payments).Error

	return payments, total, err
}

// CountByStatus 统计各状态的缴费记录数量
// 统计不受列表筛选影响，用于前端筛选按钮的角标
func (r *PaymentRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row

	err := r.db.WithContext(ctx).Model(&payment.Payment{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(payment.Statuses))
	for _, s := range payment.Statuses {
		counts[string(s)] = 0
	}
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}

// Decide 审核缴费记录，pending 进入 approved / rejected 终态
//
// 状态和审核意见在同一条 UPDATE 中写入，并以 WHERE status = 'pending'
// 守护，终态记录不会被二次修改。seenUpdatedAt 为客户端读取列表时
// 看到的版本，非零时参与条件判断，过期写入返回 ErrStaleDecision。
func (r *PaymentRepository) Decide(ctx context.Context, id uint64, newStatus, comment, decidedBy string, seenUpdatedAt time.Time) (*payment.Payment, error) {
	if !payment.ValidDecision(newStatus) {
		return nil, errors.New("invalid decision status: " + newStatus)
	}

	now := time.Now()
	query := r.db.WithContext(ctx).Model(&payment.Payment{}).
		Where("id = ? AND status = ?", id, string(payment.StatusPending))
	if !seenUpdatedAt.IsZero() {
		query = query.Where("updated_at = ?", seenUpdatedAt)
	}

	result := query.Updates(map[string]interface{}{
		"status":        newStatus,
		"admin_comment": comment,
		"decided_by":    decidedBy,
		"decided_at":    now,
		"updated_at":    now,
	})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// 区分三种失败：记录不存在、已被审核、版本过期
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !current.CanDecide() {
			return nil, ErrAlreadyDecided
		}
		return nil, ErrStaleDecision
	}

	return r.GetByID(ctx, id)
}
