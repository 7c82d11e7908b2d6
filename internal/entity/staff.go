package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffMember is a directory entry. Order is a non-unique sort key used only
// for display sequencing; listings sort by Order ascending, then Name.
type StaffMember struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Position   string    `gorm:"size:100;not null" json:"position"`
	Department string    `gorm:"size:100" json:"department"`
	Email      string    `gorm:"size:100" json:"email"`
	Phone      string    `gorm:"size:50" json:"phone"`
	ImageURL   string    `gorm:"type:text" json:"imageUrl"`
	IsActive   bool      `gorm:"not null" json:"isActive"`
	Order      int       `gorm:"column:sort_order;not null;default:0" json:"order"`
}

func (s *StaffMember) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
