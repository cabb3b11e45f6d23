package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store represents a storefront owned by a single admin. AdminID is set
// at creation and never reassigned.
type Store struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Address   *string   `json:"address"`
	AdminID   string    `json:"admin_id" gorm:"type:varchar(64);not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Admin User `json:"-" gorm:"foreignKey:AdminID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
