package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storeadmin/internal/model"
)

// StoreRepository defines store persistence operations.
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Store, error)
	Update(ctx context.Context, id uuid.UUID, name string, address *string) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByAdmin(ctx context.Context, adminID string, search string) ([]model.Store, error)
}

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository.
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

// Create creates a new store.
func (r *storeRepository) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

// FindByID finds a store by ID.
func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Store, error) {
	var store model.Store
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// Update overwrites the store's name and address. Address is updated even
// when nil so an edit can clear it.
func (r *storeRepository) Update(ctx context.Context, id uuid.UUID, name string, address *string) error {
	return r.db.WithContext(ctx).Model(&model.Store{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "address": address}).Error
}

// Delete removes a store row.
func (r *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Store{}).Error
}

// FindByAdmin lists stores owned by adminID. A non-empty search narrows
// the result to rows whose name or address contains the substring,
// case-insensitively.
func (r *storeRepository) FindByAdmin(ctx context.Context, adminID string, search string) ([]model.Store, error) {
	var stores []model.Store
	q := r.db.WithContext(ctx).Where("admin_id = ?", adminID)
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(address) LIKE LOWER(?)", pattern, pattern)
	}
	if err := q.Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}
