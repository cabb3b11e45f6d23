package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subcategory is a second-level grouping under a category. Unlike a
// category's store, the CategoryID is mutable: an edit may move the
// subcategory to a different category under the same admin.
type Subcategory struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	CategoryID uuid.UUID `json:"category_id" gorm:"type:char(36);not null;index"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Category Category `json:"-" gorm:"foreignKey:CategoryID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SubcategoryOwner is the ownership-chain projection used to authorize
// subcategory mutations: subcategory -> category -> store -> admin.
type SubcategoryOwner struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	AdminID    string
}

// SubcategoryListing is a subcategory row joined with its category's
// name, as shown on the admin categories page.
type SubcategoryListing struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
}
