package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Announcement struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	IsPublished bool       `gorm:"not null" json:"isPublished"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid" json:"createdBy"`
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
