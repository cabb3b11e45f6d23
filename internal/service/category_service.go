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

// CategoryService implements category CRUD with the store-ownership
// chain enforced on every mutation.
type CategoryService interface {
	Create(ctx context.Context, adminID, name string, storeID uuid.UUID) (*model.Category, error)
	Update(ctx context.Context, adminID string, categoryID uuid.UUID, name string) error
	Delete(ctx context.Context, adminID string, categoryID uuid.UUID) error
	ListForAdmin(ctx context.Context, adminID string) ([]model.CategoryListing, error)
}

type categoryService struct {
	categories repository.CategoryRepository
	stores     repository.StoreRepository
	cache      *cache.Client
}

// NewCategoryService creates a new category service.
func NewCategoryService(categories repository.CategoryRepository, stores repository.StoreRepository, cache *cache.Client) CategoryService {
	return &categoryService{categories: categories, stores: stores, cache: cache}
}

// Create inserts a category under a store the caller owns.
func (s *categoryService) Create(ctx context.Context, adminID, name string, storeID uuid.UUID) (*model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.ErrNameRequired
	}
	if storeID == uuid.Nil {
		return nil, errors.ErrStoreRequired
	}

	store, err := s.stores.FindByID(ctx, storeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUnauthorized
		}
		return nil, fmt.Errorf("load store: %w", err)
	}
	if store.AdminID != adminID {
		return nil, errors.ErrUnauthorized
	}

	category := &model.Category{
		Name:    name,
		StoreID: storeID,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	_ = s.cache.Delete(ctx, categoryViewKey(adminID))
	return category, nil
}

// Update renames the category after verifying the ownership chain.
func (s *categoryService) Update(ctx context.Context, adminID string, categoryID uuid.UUID, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.ErrNameRequired
	}
	if err := s.authorize(ctx, adminID, categoryID); err != nil {
		return err
	}

	if err := s.categories.UpdateName(ctx, categoryID, name); err != nil {
		return fmt.Errorf("update category: %w", err)
	}

	_ = s.cache.Delete(ctx, categoryViewKey(adminID))
	return nil
}

// Delete removes the category and every subcategory under it. Both
// deletes run in one transaction, subcategories first, so no orphaned
// subcategory can survive a category delete.
func (s *categoryService) Delete(ctx context.Context, adminID string, categoryID uuid.UUID) error {
	if err := s.authorize(ctx, adminID, categoryID); err != nil {
		return err
	}

	err := s.categories.WithTransaction(ctx, func(ctx context.Context, repo repository.CategoryRepository) error {
		if err := repo.DeleteSubcategoriesByCategory(ctx, categoryID); err != nil {
			return fmt.Errorf("delete subcategories: %w", err)
		}
		if err := repo.Delete(ctx, categoryID); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, categoryViewKey(adminID), subcategoryViewKey(adminID))
	return nil
}

// ListForAdmin returns every category under the admin's stores, joined
// with the store name, served cache-aside.
func (s *categoryService) ListForAdmin(ctx context.Context, adminID string) ([]model.CategoryListing, error) {
	key := categoryViewKey(adminID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.CategoryListing
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	listings, err := s.categories.FindByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if payload, err := json.Marshal(listings); err == nil {
		_ = s.cache.Set(ctx, key, payload, viewCacheTTL)
	}
	return listings, nil
}

// authorize walks category -> store -> admin and compares against the
// caller. Missing and foreign categories fail identically.
func (s *categoryService) authorize(ctx context.Context, adminID string, categoryID uuid.UUID) error {
	owner, err := s.categories.FindOwner(ctx, categoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUnauthorized
		}
		return fmt.Errorf("load category owner: %w", err)
	}
	if owner.AdminID != adminID {
		return errors.ErrUnauthorized
	}
	return nil
}
