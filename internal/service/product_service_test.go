package service

import (
	"context"
	errs "errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storeadmin/internal/cache"
	"storeadmin/internal/errors"
	"storeadmin/internal/model"
)

func newProductService(products *MockProductRepository, stores *MockStoreRepository, images *MockImageStore) ProductService {
	return NewProductService(products, stores, images, new(cache.Client), time.Second)
}

func TestProductService_Create(t *testing.T) {
	storeID := uuid.New()
	subcategoryID := uuid.New()
	stock := 5

	tests := []struct {
		name          string
		adminID       string
		input         CreateProductInput
		setupStores   func(*MockStoreRepository)
		expectCreate  bool
		expectedError error
	}{
		{
			name:    "successful creation defaults to active",
			adminID: "admin-1",
			input: CreateProductInput{
				Name:          "Ponsel A1",
				Price:         "100000",
				Stock:         &stock,
				StoreID:       storeID,
				SubcategoryID: subcategoryID,
			},
			setupStores: func(m *MockStoreRepository) {
				m.On("FindByID", mock.Anything, storeID).Return(&model.Store{ID: storeID, AdminID: "admin-1"}, nil)
			},
			expectCreate: true,
		},
		{
			name:    "foreign store is rejected with no insert",
			adminID: "admin-2",
			input: CreateProductInput{
				Name:          "Ponsel A1",
				Price:         "100000",
				StoreID:       storeID,
				SubcategoryID: subcategoryID,
			},
			setupStores: func(m *MockStoreRepository) {
				m.On("FindByID", mock.Anything, storeID).Return(&model.Store{ID: storeID, AdminID: "admin-1"}, nil)
			},
			expectedError: errors.ErrUnauthorized,
		},
		{
			name:    "missing subcategory id is a validation error",
			adminID: "admin-1",
			input: CreateProductInput{
				Name:    "Ponsel A1",
				Price:   "100000",
				StoreID: storeID,
			},
			setupStores:   func(m *MockStoreRepository) {},
			expectedError: errors.ErrSubcategoryRequired,
		},
		{
			name:    "negative price is a validation error",
			adminID: "admin-1",
			input: CreateProductInput{
				Name:          "Ponsel A1",
				Price:         "-5",
				StoreID:       storeID,
				SubcategoryID: subcategoryID,
			},
			setupStores:   func(m *MockStoreRepository) {},
			expectedError: errors.ErrPriceInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProducts := new(MockProductRepository)
			mockStores := new(MockStoreRepository)
			tt.setupStores(mockStores)
			if tt.expectCreate {
				mockProducts.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)
			}

			svc := newProductService(mockProducts, mockStores, new(MockImageStore))
			product, err := svc.Create(context.Background(), tt.adminID, tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, product)
				mockProducts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, product)
				assert.Equal(t, model.ProductActive, product.IsActive)
				assert.Equal(t, 5, product.Stock)
				assert.Nil(t, product.ImageURL)
			}

			mockProducts.AssertExpectations(t)
			mockStores.AssertExpectations(t)
		})
	}
}

func TestProductService_Create_StockDefaultsToZero(t *testing.T) {
	storeID := uuid.New()
	subcategoryID := uuid.New()

	mockProducts := new(MockProductRepository)
	mockProducts.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)
	mockStores := new(MockStoreRepository)
	mockStores.On("FindByID", mock.Anything, storeID).Return(&model.Store{ID: storeID, AdminID: "admin-1"}, nil)

	svc := newProductService(mockProducts, mockStores, new(MockImageStore))
	product, err := svc.Create(context.Background(), "admin-1", CreateProductInput{
		Name:          "Ponsel A1",
		Price:         "100000",
		StoreID:       storeID,
		SubcategoryID: subcategoryID,
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
}

func TestProductService_ToggleStatus_DoubleToggleRestores(t *testing.T) {
	productID := uuid.New()

	// The repository reports the flag as it stood before each toggle.
	state := model.ProductActive
	mockProducts := new(MockProductRepository)
	mockProducts.On("FindOwner", mock.Anything, productID).
		Return(&model.ProductOwner{ID: productID, IsActive: model.ProductActive, AdminID: "admin-1"}, nil).Once()
	mockProducts.On("FindOwner", mock.Anything, productID).
		Return(&model.ProductOwner{ID: productID, IsActive: model.ProductInactive, AdminID: "admin-1"}, nil).Once()
	mockProducts.On("UpdateStatus", mock.Anything, productID, mock.AnythingOfType("int")).
		Run(func(args mock.Arguments) { state = args.Int(2) }).
		Return(nil)

	svc := newProductService(mockProducts, new(MockStoreRepository), new(MockImageStore))

	assert.NoError(t, svc.ToggleStatus(context.Background(), "admin-1", productID))
	assert.Equal(t, model.ProductInactive, state)

	assert.NoError(t, svc.ToggleStatus(context.Background(), "admin-1", productID))
	assert.Equal(t, model.ProductActive, state)
	mockProducts.AssertExpectations(t)
}

func TestProductService_Create_ImageFailureDegrades(t *testing.T) {
	storeID := uuid.New()
	subcategoryID := uuid.New()
	image := &multipart.FileHeader{Filename: "ponsel.jpg", Size: 1024}

	mockProducts := new(MockProductRepository)
	mockProducts.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)
	mockStores := new(MockStoreRepository)
	mockStores.On("FindByID", mock.Anything, storeID).Return(&model.Store{ID: storeID, AdminID: "admin-1"}, nil)
	mockImages := new(MockImageStore)
	mockImages.On("Save", mock.Anything, image).Return("", errs.New("disk full"))

	svc := newProductService(mockProducts, mockStores, mockImages)
	product, err := svc.Create(context.Background(), "admin-1", CreateProductInput{
		Name:          "Ponsel A1",
		Price:         "100000",
		StoreID:       storeID,
		SubcategoryID: subcategoryID,
		Image:         image,
	})

	assert.NoError(t, err)
	assert.NotNil(t, product)
	assert.Nil(t, product.ImageURL)
	mockImages.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestProductService_ToggleStatus_Unauthorized(t *testing.T) {
	productID := uuid.New()

	mockProducts := new(MockProductRepository)
	mockProducts.On("FindOwner", mock.Anything, productID).
		Return(&model.ProductOwner{ID: productID, IsActive: model.ProductActive, AdminID: "admin-1"}, nil)

	svc := newProductService(mockProducts, new(MockStoreRepository), new(MockImageStore))
	err := svc.ToggleStatus(context.Background(), "admin-2", productID)

	assert.Equal(t, errors.ErrUnauthorized, err)
	mockProducts.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_Update_ChecksOwnership(t *testing.T) {
	productID := uuid.New()
	storeID := uuid.New()
	subcategoryID := uuid.New()

	mockProducts := new(MockProductRepository)
	mockProducts.On("FindOwner", mock.Anything, productID).
		Return(&model.ProductOwner{ID: productID, StoreID: storeID, AdminID: "admin-1"}, nil)

	svc := newProductService(mockProducts, new(MockStoreRepository), new(MockImageStore))
	err := svc.Update(context.Background(), "admin-2", UpdateProductInput{
		ProductID:     productID,
		Name:          "Ponsel A1",
		Price:         "100000",
		StoreID:       storeID,
		SubcategoryID: subcategoryID,
	})

	assert.Equal(t, errors.ErrUnauthorized, err)
	mockProducts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_Delete(t *testing.T) {
	productID := uuid.New()

	mockProducts := new(MockProductRepository)
	mockProducts.On("FindOwner", mock.Anything, productID).
		Return(&model.ProductOwner{ID: productID, AdminID: "admin-1"}, nil)
	mockProducts.On("Delete", mock.Anything, productID).Return(nil)

	svc := newProductService(mockProducts, new(MockStoreRepository), new(MockImageStore))
	err := svc.Delete(context.Background(), "admin-1", productID)

	assert.NoError(t, err)
	mockProducts.AssertExpectations(t)
}

func TestProductService_ListForAdmin(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockProducts.On("FindByAdmin", mock.Anything, "admin-1").
		Return([]model.ProductListing{{
			Name:      "Ponsel A1",
			Price:     decimal.NewFromInt(1250000),
			StoreName: "Main St",
			IsActive:  model.ProductActive,
			Stock:     5,
		}}, nil)

	svc := newProductService(mockProducts, new(MockStoreRepository), new(MockImageStore))
	listings, err := svc.ListForAdmin(context.Background(), "admin-1")

	assert.NoError(t, err)
	assert.Len(t, listings, 1)
	assert.Equal(t, model.ProductActive, listings[0].IsActive)
	assert.Equal(t, 5, listings[0].Stock)
	assert.Equal(t, "Rp 1.250.000", listings[0].PriceFormatted)
	mockProducts.AssertExpectations(t)
}

func TestProductService_ListForAdmin_KeepsOrphanedProducts(t *testing.T) {
	subName := "Ponsel"
	catName := "Elektronik"

	// A category cascade removes subcategories but leaves products with
	// dangling subcategory ids; the repository surfaces those rows with
	// nil names and the listing must pass them through.
	mockProducts := new(MockProductRepository)
	mockProducts.On("FindByAdmin", mock.Anything, "admin-1").
		Return([]model.ProductListing{
			{
				Name:            "Ponsel A1",
				Price:           decimal.NewFromInt(1250000),
				StoreName:       "Main St",
				SubcategoryName: &subName,
				CategoryName:    &catName,
			},
			{
				Name:      "Ponsel B2",
				Price:     decimal.NewFromInt(2750000),
				StoreName: "Main St",
			},
		}, nil)

	svc := newProductService(mockProducts, new(MockStoreRepository), new(MockImageStore))
	listings, err := svc.ListForAdmin(context.Background(), "admin-1")

	assert.NoError(t, err)
	assert.Len(t, listings, 2)
	assert.Equal(t, "Ponsel B2", listings[1].Name)
	assert.Nil(t, listings[1].SubcategoryName)
	assert.Nil(t, listings[1].CategoryName)
	assert.Equal(t, "Rp 2.750.000", listings[1].PriceFormatted)
	mockProducts.AssertExpectations(t)
}

func TestProductService_ListForAdmin_Error(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockProducts.On("FindByAdmin", mock.Anything, "admin-1").
		Return(nil, errs.New("connection refused"))

	svc := newProductService(mockProducts, new(MockStoreRepository), new(MockImageStore))
	listings, err := svc.ListForAdmin(context.Background(), "admin-1")

	assert.Error(t, err)
	assert.Nil(t, listings)
}
