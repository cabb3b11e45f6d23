package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"storeadmin/internal/cache"
	"storeadmin/internal/errors"
	"storeadmin/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAdminGuard_RequireAdmin(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:   "admin passes",
			userID: "user-1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "user-1").
					Return(&model.User{ID: "user-1", Role: model.RoleAdmin}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "missing identity is unauthenticated",
			userID:        "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: errors.ErrUnauthenticated,
		},
		{
			name:   "unknown user is forbidden",
			userID: "user-2",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "user-2").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrForbidden,
		},
		{
			name:   "non-admin role is forbidden",
			userID: "user-3",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "user-3").
					Return(&model.User{ID: "user-3", Role: model.RoleUser}, nil)
			},
			expectedError: errors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockUsers)

			guard := NewAdminGuard(mockUsers, new(cache.Client))
			user, err := guard.RequireAdmin(context.Background(), tt.userID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.True(t, user.IsAdmin())
			}
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAdminGuard_RequireAdmin_NoIdentityNoLookup(t *testing.T) {
	mockUsers := new(MockUserRepository)

	guard := NewAdminGuard(mockUsers, new(cache.Client))
	_, err := guard.RequireAdmin(context.Background(), "")

	assert.Equal(t, errors.ErrUnauthenticated, err)
	mockUsers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
