package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SiteSetting struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Key          string    `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value        string    `gorm:"type:text" json:"value"`
	Description  string    `gorm:"type:text" json:"description"`
	LastModified time.Time `gorm:"autoUpdateTime" json:"lastModified"`
}

func (s *SiteSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
