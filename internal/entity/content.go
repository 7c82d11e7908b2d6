package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentPage holds the editable content of one public page. Content is an
// arbitrary JSON document whose shape depends on the page (hero blocks,
// resource lists, contact details).
type ContentPage struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PageKey      string         `gorm:"size:100;uniqueIndex;not null" json:"pageKey"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Content      datatypes.JSON `gorm:"type:jsonb" json:"content"`
	IsPublished  bool           `gorm:"not null" json:"isPublished"`
	LastModified time.Time      `gorm:"autoUpdateTime" json:"lastModified"`
	ModifiedBy   *uuid.UUID     `gorm:"type:uuid" json:"modifiedBy"`
}

func (p *ContentPage) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
