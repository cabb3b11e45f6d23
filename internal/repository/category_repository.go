package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storeadmin/internal/model"
)

// CategoryRepository defines category persistence operations, including
// the subcategory bulk delete used by the cascade.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	FindOwner(ctx context.Context, id uuid.UUID) (*model.CategoryOwner, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteSubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) error
	FindByAdmin(ctx context.Context, adminID string) ([]model.CategoryListing, error)
	// WithTransaction executes fn against a transaction-scoped repository.
	// The category cascade delete runs through here so both statements
	// commit or roll back together.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CategoryRepository) error) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// FindOwner loads the category joined up to its store's admin id.
func (r *categoryRepository) FindOwner(ctx context.Context, id uuid.UUID) (*model.CategoryOwner, error) {
	var owner model.CategoryOwner
	err := r.db.WithContext(ctx).
		Table("categories").
		Select("categories.id, categories.store_id, stores.admin_id").
		Joins("JOIN stores ON stores.id = categories.store_id").
		Where("categories.id = ?", id).
		Take(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// UpdateName renames a category in place.
func (r *categoryRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	return r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", id).
		Update("name", name).Error
}

// Delete removes a category row.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Category{}).Error
}

// DeleteSubcategoriesByCategory removes every subcategory referencing the
// category. Must run before the category itself is deleted.
func (r *categoryRepository) DeleteSubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&model.Subcategory{}).Error
}

// FindByAdmin lists every category under the admin's stores, joined with
// the store name.
func (r *categoryRepository) FindByAdmin(ctx context.Context, adminID string) ([]model.CategoryListing, error) {
	var listings []model.CategoryListing
	err := r.db.WithContext(ctx).
		Table("categories").
		Select("categories.id, categories.name, categories.store_id, stores.name AS store_name, categories.created_at").
		Joins("JOIN stores ON stores.id = categories.store_id").
		Where("stores.admin_id = ?", adminID).
		Scan(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// WithTransaction executes a function within a database transaction.
func (r *categoryRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CategoryRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &categoryRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
