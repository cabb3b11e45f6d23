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

// SubcategoryService implements subcategory CRUD. Authorization walks
// subcategory -> category -> store -> admin.
type SubcategoryService interface {
	Create(ctx context.Context, adminID, name string, categoryID uuid.UUID) (*model.Subcategory, error)
	Update(ctx context.Context, adminID string, subcategoryID, categoryID uuid.UUID, name string) error
	Delete(ctx context.Context, adminID string, subcategoryID uuid.UUID) error
	ListForAdmin(ctx context.Context, adminID string) ([]model.SubcategoryListing, error)
}

type subcategoryService struct {
	subcategories repository.SubcategoryRepository
	categories    repository.CategoryRepository
	cache         *cache.Client
}

// NewSubcategoryService creates a new subcategory service.
func NewSubcategoryService(subcategories repository.SubcategoryRepository, categories repository.CategoryRepository, cache *cache.Client) SubcategoryService {
	return &subcategoryService{subcategories: subcategories, categories: categories, cache: cache}
}

// Create inserts a subcategory under a category whose chain the caller owns.
func (s *subcategoryService) Create(ctx context.Context, adminID, name string, categoryID uuid.UUID) (*model.Subcategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.ErrNameRequired
	}
	if categoryID == uuid.Nil {
		return nil, errors.ErrCategoryRequired
	}
	if err := s.authorizeCategory(ctx, adminID, categoryID); err != nil {
		return nil, err
	}

	subcategory := &model.Subcategory{
		Name:       name,
		CategoryID: categoryID,
	}
	if err := s.subcategories.Create(ctx, subcategory); err != nil {
		return nil, fmt.Errorf("create subcategory: %w", err)
	}

	_ = s.cache.Delete(ctx, subcategoryViewKey(adminID))
	return subcategory, nil
}

// Update renames the subcategory and reassigns its parent category in a
// single statement. Both the subcategory's current chain and the
// destination category must belong to the caller; a move can never cross
// admins.
func (s *subcategoryService) Update(ctx context.Context, adminID string, subcategoryID, categoryID uuid.UUID, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.ErrNameRequired
	}
	if categoryID == uuid.Nil {
		return errors.ErrCategoryRequired
	}
	if err := s.authorizeSubcategory(ctx, adminID, subcategoryID); err != nil {
		return err
	}
	if err := s.authorizeCategory(ctx, adminID, categoryID); err != nil {
		return err
	}

	if err := s.subcategories.Update(ctx, subcategoryID, name, categoryID); err != nil {
		return fmt.Errorf("update subcategory: %w", err)
	}

	_ = s.cache.Delete(ctx, subcategoryViewKey(adminID))
	return nil
}

// Delete removes the subcategory after verifying the ownership chain.
func (s *subcategoryService) Delete(ctx context.Context, adminID string, subcategoryID uuid.UUID) error {
	if err := s.authorizeSubcategory(ctx, adminID, subcategoryID); err != nil {
		return err
	}

	if err := s.subcategories.Delete(ctx, subcategoryID); err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}

	_ = s.cache.Delete(ctx, subcategoryViewKey(adminID))
	return nil
}

// ListForAdmin returns every subcategory under the admin's stores,
// joined with the category name, served cache-aside.
func (s *subcategoryService) ListForAdmin(ctx context.Context, adminID string) ([]model.SubcategoryListing, error) {
	key := subcategoryViewKey(adminID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.SubcategoryListing
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	listings, err := s.subcategories.FindByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}

	if payload, err := json.Marshal(listings); err == nil {
		_ = s.cache.Set(ctx, key, payload, viewCacheTTL)
	}
	return listings, nil
}

func (s *subcategoryService) authorizeCategory(ctx context.Context, adminID string, categoryID uuid.UUID) error {
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

func (s *subcategoryService) authorizeSubcategory(ctx context.Context, adminID string, subcategoryID uuid.UUID) error {
	owner, err := s.subcategories.FindOwner(ctx, subcategoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUnauthorized
		}
		return fmt.Errorf("load subcategory owner: %w", err)
	}
	if owner.AdminID != adminID {
		return errors.ErrUnauthorized
	}
	return nil
}
