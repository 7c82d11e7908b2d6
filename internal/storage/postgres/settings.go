package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) GetAllSiteSettings(ctx context.Context) ([]entity.SiteSetting, error) {
	var list []entity.SiteSetting
	if err := s.db.WithContext(ctx).Order("key ASC").Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (s *Store) GetSiteSetting(ctx context.Context, key string) (*entity.SiteSetting, error) {
	var setting entity.SiteSetting
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, translate(err)
	}
	return &setting, nil
}

// UpdateSiteSetting upserts by key: creates the setting if absent, otherwise
// replaces the value and refreshes lastModified.
func (s *Store) UpdateSiteSetting(ctx context.Context, key, value string) (*entity.SiteSetting, error) {
	setting := entity.SiteSetting{
		ID:           uuid.New(),
		Key:          key,
		Value:        value,
		LastModified: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":         value,
			"last_modified": setting.LastModified,
		}),
	}).Create(&setting).Error
	if err != nil {
		// The upsert never conflicts on key, so a duplicate here is unexpected.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, storage.ErrDuplicate
		}
		return nil, err
	}

	return s.GetSiteSetting(ctx, key)
}
