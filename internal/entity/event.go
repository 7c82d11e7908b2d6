package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	EventDate   time.Time  `gorm:"not null" json:"eventDate"`
	Location    string     `gorm:"size:255" json:"location"`
	IsPublished bool       `gorm:"not null" json:"isPublished"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid" json:"createdBy"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
