package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storeadmin/internal/model"
)

// productUpdateColumns are the mutable columns overwritten by an edit.
var productUpdateColumns = []string{
	"name", "description", "price", "production_cost",
	"stock", "sku", "image_url", "store_id", "subcategory_id",
}

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindOwner(ctx context.Context, id uuid.UUID) (*model.ProductOwner, error)
	Update(ctx context.Context, product *model.Product) error
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive int) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByAdmin(ctx context.Context, adminID string) ([]model.ProductListing, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create creates a new product.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FindOwner loads the product joined up to its store's admin id.
func (r *productRepository) FindOwner(ctx context.Context, id uuid.UUID) (*model.ProductOwner, error) {
	var owner model.ProductOwner
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.id, products.store_id, products.is_active, stores.admin_id").
		Joins("JOIN stores ON stores.id = products.store_id").
		Where("products.id = ?", id).
		Take(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// Update overwrites the mutable product columns by id. Selecting the
// columns explicitly lets nil pointers clear nullable fields.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).
		Select(productUpdateColumns).
		Updates(product).Error
}

// UpdateStatus sets the active flag.
func (r *productRepository) UpdateStatus(ctx context.Context, id uuid.UUID, isActive int) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("is_active", isActive).Error
}

// Delete removes a product row.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{}).Error
}

// FindByAdmin lists every product under the admin's stores, joined with
// the store, subcategory and category names. The subcategory and
// category joins are LEFT JOINs: a category delete cascades away
// subcategories but leaves products with dangling subcategory ids, and
// those products must stay visible so the admin can re-home them.
func (r *productRepository) FindByAdmin(ctx context.Context, adminID string) ([]model.ProductListing, error) {
	var listings []model.ProductListing
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.id, products.name, products.price, products.description, "+
			"products.production_cost, products.stock, products.image_url, products.sku, "+
			"products.is_active, products.store_id, stores.name AS store_name, "+
			"products.subcategory_id, subcategories.name AS subcategory_name, "+
			"categories.name AS category_name, products.created_at").
		Joins("JOIN stores ON stores.id = products.store_id").
		Joins("LEFT JOIN subcategories ON subcategories.id = products.subcategory_id").
		Joins("LEFT JOIN categories ON categories.id = subcategories.category_id").
		Where("stores.admin_id = ?", adminID).
		Scan(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}
