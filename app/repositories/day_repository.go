package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tcac/app/models/day"
	"tcac/pkg/database"
)

// ErrDayNotFound 活动日不存在
var ErrDayNotFound = errors.New("day not found")

// DayRepository 活动日仓库
type DayRepository struct {
	db *gorm.DB
}

// NewDayRepository 创建仓库实例
func NewDayRepository() *DayRepository {
	return &DayRepository{
		db: database.DB,
	}
}

// List 获取全部活动日，按日期排序
func (r *DayRepository) List(ctx context.Context) ([]day.Day, error) {
	var days []day.Day
	err := r.db.WithContext(ctx).Order("date ASC").Find(&days).Error
	return days, err
}

// Create 创建活动日
func (r *DayRepository) Create(ctx context.Context, d *day.Day) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// Update 更新活动日
func (r *DayRepository) Update(ctx context.Context, id uint64, d *day.Day) (*day.Day, error) {
	var current day.Day
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}

	d.ID = current.ID
	d.CreatedAt = current.CreatedAt
	if err := r.db.WithContext(ctx).Save(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// Delete 删除活动日
func (r *DayRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&day.Day{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDayNotFound
	}
	return nil
}
