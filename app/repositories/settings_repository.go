package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tcac/app/models/settings"
	"tcac/pkg/database"
)

// ErrSettingsNotFound 设置记录不存在
var ErrSettingsNotFound = errors.New("portal settings not found")

// SettingsRepository 门户设置仓库
// 全表只维护一条记录，读写都针对主键最小的那条
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository 创建仓库实例
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{
		db: database.DB,
	}
}

// Get 获取当前设置
func (r *SettingsRepository) Get(ctx context.Context) (*settings.Setting, error) {
	var s settings.Setting
	err := r.db.WithContext(ctx).Order("id ASC").First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return &s, nil
}

// CreateDefault 写入默认设置
// 幂等：已存在记录时直接返回现有记录，不会产生第二条
func (r *SettingsRepository) CreateDefault(ctx context.Context) (*settings.Setting, error) {
	existing, err := r.Get(ctx)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrSettingsNotFound) {
		return nil, err
	}

	record := settings.Default()
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Update 全量更新设置并记录修改人
func (r *SettingsRepository) Update(ctx context.Context, patch *settings.Setting, updatedBy string) (*settings.Setting, error) {
	current, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	patch.ID = current.ID
	patch.CreatedAt = current.CreatedAt
	patch.UpdatedBy = updatedBy
	patch.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(patch).Error; err != nil {
		return nil, err
	}
	return patch, nil
}
