package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storeadmin/internal/cache"
	"storeadmin/internal/errors"
	"storeadmin/internal/model"
	"storeadmin/internal/repository"
)

// StoreService implements store CRUD for the owning admin.
type StoreService interface {
	Create(ctx context.Context, adminID, name string, address *string) (*model.Store, error)
	Update(ctx context.Context, adminID string, storeID uuid.UUID, name string, address *string) error
	Delete(ctx context.Context, adminID string, storeID uuid.UUID) error
	List(ctx context.Context, adminID, search string) ([]model.Store, error)
}

type storeService struct {
	stores repository.StoreRepository
	cache  *cache.Client
}

// NewStoreService creates a new store service.
func NewStoreService(stores repository.StoreRepository, cache *cache.Client) StoreService {
	return &storeService{stores: stores, cache: cache}
}

// Create inserts a store owned by the caller. No ownership check is
// needed for a brand-new resource.
func (s *storeService) Create(ctx context.Context, adminID, name string, address *string) (*model.Store, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.ErrNameRequired
	}

	store := &model.Store{
		Name:    name,
		Address: address,
		AdminID: adminID,
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	_ = s.cache.Delete(ctx, storeViewKey(adminID))
	return store, nil
}

// Update overwrites name and address after verifying ownership.
func (s *storeService) Update(ctx context.Context, adminID string, storeID uuid.UUID, name string, address *string) error {
	if strings.TrimSpace(name) == "" {
		return errors.ErrNameRequired
	}
	if err := s.authorize(ctx, adminID, storeID); err != nil {
		return err
	}

	if err := s.stores.Update(ctx, storeID, name, address); err != nil {
		return fmt.Errorf("update store: %w", err)
	}

	_ = s.cache.Delete(ctx, storeViewKey(adminID))
	return nil
}

// Delete removes the store after verifying ownership. Categories and
// products under the store are intentionally left in place.
func (s *storeService) Delete(ctx context.Context, adminID string, storeID uuid.UUID) error {
	if err := s.authorize(ctx, adminID, storeID); err != nil {
		return err
	}

	if err := s.stores.Delete(ctx, storeID); err != nil {
		return fmt.Errorf("delete store: %w", err)
	}

	_ = s.cache.Delete(ctx, storeViewKey(adminID))
	return nil
}

// List returns the admin's stores, optionally filtered by a
// case-insensitive substring match over name and address. Unfiltered
// results are served cache-aside; searches always hit the database.
func (s *storeService) List(ctx context.Context, adminID, search string) ([]model.Store, error) {
	if search != "" {
		return s.stores.FindByAdmin(ctx, adminID, search)
	}

	key := storeViewKey(adminID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Store
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	stores, err := s.stores.FindByAdmin(ctx, adminID, "")
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	if payload, err := json.Marshal(stores); err == nil {
		_ = s.cache.Set(ctx, key, payload, viewCacheTTL)
	}
	return stores, nil
}

// authorize loads the store and compares its owner against the caller.
// A missing store and a foreign store fail the same way.
func (s *storeService) authorize(ctx context.Context, adminID string, storeID uuid.UUID) error {
	store, err := s.stores.FindByID(ctx, storeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUnauthorized
		}
		return fmt.Errorf("load store: %w", err)
	}
	if store.AdminID != adminID {
		return errors.ErrUnauthorized
	}
	return nil
}
