package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product active states. IsActive is a binary flag, not a tri-state.
const (
	ProductActive   = 1
	ProductInactive = 0
)

// Product represents a sellable item belonging to one store and one
// subcategory.
type Product struct {
	ID             uuid.UUID           `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string              `json:"name" gorm:"size:255;not null"`
	Price          decimal.Decimal     `json:"price" gorm:"type:decimal(10,2);not null"`
	Description    *string             `json:"description"`
	ProductionCost decimal.NullDecimal `json:"production_cost" gorm:"type:decimal(10,2)"`
	SubcategoryID  uuid.UUID           `json:"subcategory_id" gorm:"type:char(36);not null;index"`
	StoreID        uuid.UUID           `json:"store_id" gorm:"type:char(36);not null;index"`
	Stock          int                 `json:"stock" gorm:"default:0"`
	ImageURL       *string             `json:"image_url"`
	ImageURLs      *string             `json:"image_urls"` // JSON array of additional image URLs
	SKU            *string             `json:"sku" gorm:"column:sku;size:100"`
	IsActive       int                 `json:"is_active" gorm:"default:1"`
	CreatedAt      time.Time           `json:"created_at"`

	// Relations
	Store       Store       `json:"-" gorm:"foreignKey:StoreID"`
	Subcategory Subcategory `json:"-" gorm:"foreignKey:SubcategoryID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProductOwner is the ownership-chain projection used to authorize
// product mutations: the product row joined up to its store's admin.
type ProductOwner struct {
	ID       uuid.UUID
	StoreID  uuid.UUID
	IsActive int
	AdminID  string
}

// ProductListing is a product row joined with its store, subcategory and
// category names, as shown on the admin products page. The subcategory
// and category names are nil for products whose subcategory was removed
// by a category cascade.
type ProductListing struct {
	ID              uuid.UUID           `json:"id"`
	Name            string              `json:"name"`
	Price           decimal.Decimal     `json:"price"`
	PriceFormatted  string              `json:"price_formatted" gorm:"-"`
	Description     *string             `json:"description"`
	ProductionCost  decimal.NullDecimal `json:"production_cost"`
	Stock           int                 `json:"stock"`
	ImageURL        *string             `json:"image_url"`
	SKU             *string             `json:"sku"`
	IsActive        int                 `json:"is_active"`
	StoreID         uuid.UUID           `json:"store_id"`
	StoreName       string              `json:"store_name"`
	SubcategoryID   uuid.UUID           `json:"subcategory_id"`
	SubcategoryName *string             `json:"subcategory_name"`
	CategoryName    *string             `json:"category_name"`
	CreatedAt       time.Time           `json:"created_at"`
}
