package auth

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"storeadmin/internal/cache"
	"storeadmin/internal/errors"
	"storeadmin/internal/model"
	"storeadmin/internal/repository"
)

// adminCacheTTL bounds how long a resolved identity may be reused. A
// just-revoked admin can keep acting for at most this long.
const adminCacheTTL = 5 * time.Minute

// AdminGuard resolves a caller identity to a persisted user and asserts
// the admin role. It runs at the start of every admin operation, is
// idempotent and has no side effects beyond the identity cache.
type AdminGuard struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewAdminGuard creates a new admin guard.
func NewAdminGuard(users repository.UserRepository, cache *cache.Client) *AdminGuard {
	return &AdminGuard{users: users, cache: cache}
}

// RequireAdmin returns the user record for userID if it exists and holds
// the admin role. It fails with ErrUnauthenticated when no identity is
// present and ErrForbidden when the user is missing or not an admin.
func (g *AdminGuard) RequireAdmin(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, errors.ErrUnauthenticated
	}

	user, err := g.lookup(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrForbidden
		}
		return nil, err
	}

	if !user.IsAdmin() {
		return nil, errors.ErrForbidden
	}
	return user, nil
}

func (g *AdminGuard) cacheKey(userID string) string {
	return "user:" + userID
}

// lookup fetches the user, cache-aside with a short TTL. Only the row is
// cached; the role check above always runs against the returned record.
func (g *AdminGuard) lookup(ctx context.Context, userID string) (*model.User, error) {
	if data, _ := g.cache.Get(ctx, g.cacheKey(userID)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := g.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = g.cache.Set(ctx, g.cacheKey(userID), payload, adminCacheTTL)
	}
	return user, nil
}
