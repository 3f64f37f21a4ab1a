package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tcac/app/models/meal"
	"tcac/pkg/database"
)

// ErrMealNotFound 餐食不存在
var ErrMealNotFound = errors.New("meal not found")

// MealRepository 餐食仓库
type MealRepository struct {
	db *gorm.DB
}

// NewMealRepository 创建仓库实例
func NewMealRepository() *MealRepository {
	return &MealRepository{
		db: database.DB,
	}
}

// List 获取全部餐食安排
func (r *MealRepository) List(ctx context.Context) ([]meal.Meal, error) {
	var meals []meal.Meal
	err := r.db.WithContext(ctx).Order("day_id ASC, id ASC").Find(&meals).Error
	return meals, err
}

// Create 创建餐食
func (r *MealRepository) Create(ctx context.Context, m *meal.Meal) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Update 更新餐食
func (r *MealRepository) Update(ctx context.Context, id uint64, m *meal.Meal) (*meal.Meal, error) {
	var current meal.Meal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	m.ID = current.ID
	m.CreatedAt = current.CreatedAt
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// Delete 删除餐食
func (r *MealRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&meal.Meal{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}
