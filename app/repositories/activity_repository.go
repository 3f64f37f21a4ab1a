package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tcac/app/models/activity"
	"tcac/pkg/database"
)

// ErrActivityNotFound 活动不存在
var ErrActivityNotFound = errors.New("activity not found")

// ActivityRepository 活动仓库
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository 创建仓库实例
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{
		db: database.DB,
	}
}

// List 获取全部活动，按开始时间排序
func (r *ActivityRepository) List(ctx context.Context) ([]activity.Activity, error) {
	var activities []activity.Activity
	err := r.db.WithContext(ctx).Order("start_at ASC").Find(&activities).Error
	return activities, err
}

// Create 创建活动
func (r *ActivityRepository) Create(ctx context.Context, a *activity.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// Update 更新活动
func (r *ActivityRepository) Update(ctx context.Context, id uint64, a *activity.Activity) (*activity.Activity, error) {
	var current activity.Activity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	a.ID = current.ID
	a.CreatedAt = current.CreatedAt
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// Delete 删除活动
func (r *ActivityRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&activity.Activity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActivityNotFound
	}
	return nil
}
