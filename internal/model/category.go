package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups products within a store. StoreID is fixed at creation.
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	StoreID   uuid.UUID `json:"store_id" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Store Store `json:"-" gorm:"foreignKey:StoreID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CategoryOwner is the ownership-chain projection used to authorize
// category mutations: the category row joined up to its store's admin.
type CategoryOwner struct {
	ID      uuid.UUID
	StoreID uuid.UUID
	AdminID string
}

// CategoryListing is a category row joined with its store's name, as
// shown on the admin categories page.
type CategoryListing struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StoreID   uuid.UUID `json:"store_id"`
	StoreName string    `json:"store_name"`
	CreatedAt time.Time `json:"created_at"`
}
