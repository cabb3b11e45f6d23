package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storeadmin/internal/model"
)

// SubcategoryRepository defines subcategory persistence operations.
type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *model.Subcategory) error
	FindOwner(ctx context.Context, id uuid.UUID) (*model.SubcategoryOwner, error)
	Update(ctx context.Context, id uuid.UUID, name string, categoryID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByAdmin(ctx context.Context, adminID string) ([]model.SubcategoryListing, error)
}

type subcategoryRepository struct {
	db *gorm.DB
}

// NewSubcategoryRepository creates a new subcategory repository.
func NewSubcategoryRepository(db *gorm.DB) SubcategoryRepository {
	return &subcategoryRepository{db: db}
}

// Create creates a new subcategory.
func (r *subcategoryRepository) Create(ctx context.Context, subcategory *model.Subcategory) error {
	return r.db.WithContext(ctx).Create(subcategory).Error
}

// FindOwner loads the subcategory joined through its category and store
// up to the admin id.
func (r *subcategoryRepository) FindOwner(ctx context.Context, id uuid.UUID) (*model.SubcategoryOwner, error) {
	var owner model.SubcategoryOwner
	err := r.db.WithContext(ctx).
		Table("subcategories").
		Select("subcategories.id, subcategories.category_id, stores.admin_id").
		Joins("JOIN categories ON categories.id = subcategories.category_id").
		Joins("JOIN stores ON stores.id = categories.store_id").
		Where("subcategories.id = ?", id).
		Take(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// Update sets the name and reassigns the parent category in one statement.
func (r *subcategoryRepository) Update(ctx context.Context, id uuid.UUID, name string, categoryID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Subcategory{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "category_id": categoryID}).Error
}

// Delete removes a subcategory row.
func (r *subcategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Subcategory{}).Error
}

// FindByAdmin lists every subcategory under the admin's stores, joined
// with the category name.
func (r *subcategoryRepository) FindByAdmin(ctx context.Context, adminID string) ([]model.SubcategoryListing, error) {
	var listings []model.SubcategoryListing
	err := r.db.WithContext(ctx).
		Table("subcategories").
		Select("subcategories.id, subcategories.name, subcategories.category_id, categories.name AS category_name, subcategories.created_at").
		Joins("JOIN categories ON categories.id = subcategories.category_id").
		Joins("JOIN stores ON stores.id = categories.store_id").
		Where("stores.admin_id = ?", adminID).
		Scan(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}
