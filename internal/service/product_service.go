package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storeadmin/internal/cache"
	"storeadmin/internal/currency"
	"storeadmin/internal/errors"
	"storeadmin/internal/model"
	"storeadmin/internal/repository"
	"storeadmin/internal/storage"
)

// CreateProductInput carries the parsed multipart form for a product
// creation. Price and production cost arrive as the raw form strings.
type CreateProductInput struct {
	Name           string
	Description    *string
	Price          string
	ProductionCost *string
	Stock          *int
	SKU            *string
	StoreID        uuid.UUID
	SubcategoryID  uuid.UUID
	Image          *multipart.FileHeader
}

// UpdateProductInput carries a full overwrite of the mutable product
// fields.
type UpdateProductInput struct {
	ProductID      uuid.UUID
	Name           string
	Description    *string
	Price          string
	ProductionCost *string
	Stock          *int
	SKU            *string
	ImageURL       *string
	StoreID        uuid.UUID
	SubcategoryID  uuid.UUID
}

// ProductService implements product CRUD plus the active-flag toggle.
type ProductService interface {
	Create(ctx context.Context, adminID string, in CreateProductInput) (*model.Product, error)
	Update(ctx context.Context, adminID string, in UpdateProductInput) error
	Delete(ctx context.Context, adminID string, productID uuid.UUID) error
	ToggleStatus(ctx context.Context, adminID string, productID uuid.UUID) error
	ListForAdmin(ctx context.Context, adminID string) ([]model.ProductListing, error)
}

type productService struct {
	products      repository.ProductRepository
	stores        repository.StoreRepository
	images        storage.ImageStore
	cache         *cache.Client
	uploadTimeout time.Duration
}

// NewProductService creates a new product service.
func NewProductService(
	products repository.ProductRepository,
	stores repository.StoreRepository,
	images storage.ImageStore,
	cache *cache.Client,
	uploadTimeout time.Duration,
) ProductService {
	return &productService{
		products:      products,
		stores:        stores,
		images:        images,
		cache:         cache,
		uploadTimeout: uploadTimeout,
	}
}

// Create inserts an active product under a store the caller owns. The
// image upload is bounded and best-effort: on failure the product is
// created without an image.
func (s *productService) Create(ctx context.Context, adminID string, in CreateProductInput) (*model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.ErrNameRequired
	}
	if in.StoreID == uuid.Nil {
		return nil, errors.ErrStoreRequired
	}
	if in.SubcategoryID == uuid.Nil {
		return nil, errors.ErrSubcategoryRequired
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	productionCost, err := parseOptionalPrice(in.ProductionCost)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeStore(ctx, adminID, in.StoreID); err != nil {
		return nil, err
	}

	imageURL := s.uploadImage(ctx, in.Image)

	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}

	product := &model.Product{
		Name:           in.Name,
		Description:    in.Description,
		Price:          price,
		ProductionCost: productionCost,
		Stock:          stock,
		SKU:            in.SKU,
		ImageURL:       imageURL,
		StoreID:        in.StoreID,
		SubcategoryID:  in.SubcategoryID,
		IsActive:       model.ProductActive,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	_ = s.cache.Delete(ctx, productViewKey(adminID))
	return product, nil
}

// Update overwrites the mutable fields after verifying both the
// product's ownership chain and the destination store.
func (s *productService) Update(ctx context.Context, adminID string, in UpdateProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.ErrNameRequired
	}
	if in.StoreID == uuid.Nil {
		return errors.ErrStoreRequired
	}
	if in.SubcategoryID == uuid.Nil {
		return errors.ErrSubcategoryRequired
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return err
	}
	productionCost, err := parseOptionalPrice(in.ProductionCost)
	if err != nil {
		return err
	}
	if err := s.authorizeProduct(ctx, adminID, in.ProductID); err != nil {
		return err
	}
	if err := s.authorizeStore(ctx, adminID, in.StoreID); err != nil {
		return err
	}

	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}

	product := &model.Product{
		ID:             in.ProductID,
		Name:           in.Name,
		Description:    in.Description,
		Price:          price,
		ProductionCost: productionCost,
		Stock:          stock,
		SKU:            in.SKU,
		ImageURL:       in.ImageURL,
		StoreID:        in.StoreID,
		SubcategoryID:  in.SubcategoryID,
	}
	if err := s.products.Update(ctx, product); err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	_ = s.cache.Delete(ctx, productViewKey(adminID))
	return nil
}

// Delete removes the product after verifying the ownership chain.
func (s *productService) Delete(ctx context.Context, adminID string, productID uuid.UUID) error {
	if err := s.authorizeProduct(ctx, adminID, productID); err != nil {
		return err
	}

	if err := s.products.Delete(ctx, productID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	_ = s.cache.Delete(ctx, productViewKey(adminID))
	return nil
}

// ToggleStatus flips the product between active and inactive. Two
// toggles restore the original state.
func (s *productService) ToggleStatus(ctx context.Context, adminID string, productID uuid.UUID) error {
	owner, err := s.products.FindOwner(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUnauthorized
		}
		return fmt.Errorf("load product owner: %w", err)
	}
	if owner.AdminID != adminID {
		return errors.ErrUnauthorized
	}

	next := model.ProductInactive
	if owner.IsActive == model.ProductInactive {
		next = model.ProductActive
	}
	if err := s.products.UpdateStatus(ctx, productID, next); err != nil {
		return fmt.Errorf("update product status: %w", err)
	}

	_ = s.cache.Delete(ctx, productViewKey(adminID))
	return nil
}

// ListForAdmin returns every product under the admin's stores with
// store, subcategory and category names, served cache-aside.
func (s *productService) ListForAdmin(ctx context.Context, adminID string) ([]model.ProductListing, error) {
	key := productViewKey(adminID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.ProductListing
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	listings, err := s.products.FindByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	for i := range listings {
		listings[i].PriceFormatted = currency.FormatIDR(listings[i].Price.StringFixed(0))
	}

	if payload, err := json.Marshal(listings); err == nil {
		_ = s.cache.Set(ctx, key, payload, viewCacheTTL)
	}
	return listings, nil
}

// uploadImage resolves an optional upload to a URL. Failures and
// timeouts degrade to no image rather than failing the creation.
func (s *productService) uploadImage(ctx context.Context, file *multipart.FileHeader) *string {
	if file == nil || file.Size == 0 {
		return nil
	}

	uploadCtx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	url, err := s.images.Save(uploadCtx, file)
	if err != nil {
		log.Printf("image upload failed: %v", err)
		return nil
	}
	return &url
}

func (s *productService) authorizeStore(ctx context.Context, adminID string, storeID uuid.UUID) error {
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

func (s *productService) authorizeProduct(ctx context.Context, adminID string, productID uuid.UUID) error {
	owner, err := s.products.FindOwner(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUnauthorized
		}
		return fmt.Errorf("load product owner: %w", err)
	}
	if owner.AdminID != adminID {
		return errors.ErrUnauthorized
	}
	return nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, errors.ErrPriceInvalid
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, errors.ErrPriceInvalid
	}
	return price, nil
}

func parseOptionalPrice(raw *string) (decimal.NullDecimal, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return decimal.NullDecimal{}, nil
	}
	cost, err := parsePrice(*raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: cost, Valid: true}, nil
}
