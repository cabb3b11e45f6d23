package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"storeadmin/internal/cache"
	"storeadmin/internal/errors"
	"storeadmin/internal/model"
)

func TestCategoryService_Create(t *testing.T) {
	storeID := uuid.New()

	tests := []struct {
		name          string
		adminID       string
		categoryName  string
		setupStores   func(*MockStoreRepository)
		setupCats     func(*MockCategoryRepository)
		expectedError error
	}{
		{
			name:         "successful creation under own store",
			adminID:      "admin-1",
			categoryName: "Electronics",
			setupStores: func(m *MockStoreRepository) {
				m.On("FindByID", mock.Anything, storeID).Return(&model.Store{ID: storeID, AdminID: "admin-1"}, nil)
			},
			setupCats: func(m *MockCategoryRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:         "foreign store is rejected with no insert",
			adminID:      "admin-2",
			categoryName: "Electronics",
			setupStores: func(m *MockStoreRepository) {
				m.On("FindByID", mock.Anything, storeID).Return(&model.Store{ID: storeID, AdminID: "admin-1"}, nil)
			},
			setupCats:     func(m *MockCategoryRepository) {},
			expectedError: errors.ErrUnauthorized,
		},
		{
			name:         "missing store is rejected with no insert",
			adminID:      "admin-1",
			categoryName: "Electronics",
			setupStores: func(m *MockStoreRepository) {
				m.On("FindByID", mock.Anything, storeID).Return(nil, gorm.ErrRecordNotFound)
			},
			setupCats:     func(m *MockCategoryRepository) {},
			expectedError: errors.ErrUnauthorized,
		},
		{
			name:          "empty name is rejected before any lookup",
			adminID:       "admin-1",
			categoryName:  "",
			setupStores:   func(m *MockStoreRepository) {},
			setupCats:     func(m *MockCategoryRepository) {},
			expectedError: errors.ErrNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStores := new(MockStoreRepository)
			mockCats := new(MockCategoryRepository)
			tt.setupStores(mockStores)
			tt.setupCats(mockCats)

			svc := NewCategoryService(mockCats, mockStores, new(cache.Client))
			category, err := svc.Create(context.Background(), tt.adminID, tt.categoryName, storeID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, category)
				mockCats.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, category)
				assert.Equal(t, storeID, category.StoreID)
			}

			mockStores.AssertExpectations(t)
			mockCats.AssertExpectations(t)
		})
	}
}

func TestCategoryService_Delete_CascadesSubcategoriesFirst(t *testing.T) {
	categoryID := uuid.New()

	mockCats := new(MockCategoryRepository)
	mockCats.On("FindOwner", mock.Anything, categoryID).
		Return(&model.CategoryOwner{ID: categoryID, AdminID: "admin-1"}, nil)
	mockCats.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)

	var order []string
	mockCats.On("DeleteSubcategoriesByCategory", mock.Anything, categoryID).
		Run(func(args mock.Arguments) { order = append(order, "subcategories") }).
		Return(nil)
	mockCats.On("Delete", mock.Anything, categoryID).
		Run(func(args mock.Arguments) { order = append(order, "category") }).
		Return(nil)

	svc := NewCategoryService(mockCats, new(MockStoreRepository), new(cache.Client))
	err := svc.Delete(context.Background(), "admin-1", categoryID)

	assert.NoError(t, err)
	assert.Equal(t, []string{"subcategories", "category"}, order)
	mockCats.AssertExpectations(t)
}

func TestCategoryService_Delete_Unauthorized(t *testing.T) {
	categoryID := uuid.New()

	mockCats := new(MockCategoryRepository)
	mockCats.On("FindOwner", mock.Anything, categoryID).
		Return(&model.CategoryOwner{ID: categoryID, AdminID: "admin-1"}, nil)

	svc := NewCategoryService(mockCats, new(MockStoreRepository), new(cache.Client))
	err := svc.Delete(context.Background(), "admin-2", categoryID)

	assert.Equal(t, errors.ErrUnauthorized, err)
	mockCats.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
	mockCats.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mockCats.AssertNotCalled(t, "DeleteSubcategoriesByCategory", mock.Anything, mock.Anything)
}

func TestCategoryService_Update_ChecksOwnership(t *testing.T) {
	categoryID := uuid.New()

	tests := []struct {
		name          string
		adminID       string
		expectedError error
	}{
		{name: "owner can rename", adminID: "admin-1", expectedError: nil},
		{name: "foreign admin cannot rename", adminID: "admin-2", expectedError: errors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCats := new(MockCategoryRepository)
			mockCats.On("FindOwner", mock.Anything, categoryID).
				Return(&model.CategoryOwner{ID: categoryID, AdminID: "admin-1"}, nil)
			if tt.expectedError == nil {
				mockCats.On("UpdateName", mock.Anything, categoryID, "Renamed").Return(nil)
			}

			svc := NewCategoryService(mockCats, new(MockStoreRepository), new(cache.Client))
			err := svc.Update(context.Background(), tt.adminID, categoryID, "Renamed")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				mockCats.AssertNotCalled(t, "UpdateName", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockCats.AssertExpectations(t)
		})
	}
}

func TestCategoryService_ListForAdmin(t *testing.T) {
	mockCats := new(MockCategoryRepository)
	mockCats.On("FindByAdmin", mock.Anything, "admin-1").
		Return([]model.CategoryListing{{Name: "Electronics", StoreName: "Main St"}}, nil)

	svc := NewCategoryService(mockCats, new(MockStoreRepository), new(cache.Client))
	listings, err := svc.ListForAdmin(context.Background(), "admin-1")

	assert.NoError(t, err)
	assert.Len(t, listings, 1)
	assert.Equal(t, "Main St", listings[0].StoreName)
	mockCats.AssertExpectations(t)
}
