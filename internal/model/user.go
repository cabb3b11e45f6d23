package model

import "time"

// Role is the closed set of user roles.
type Role string

const (
	// RoleAdmin may manage stores, categories, subcategories and products.
	RoleAdmin Role = "admin"
	// RoleUser is the default role with no admin-panel access.
	RoleUser Role = "user"
)

// User represents an authenticated user. The ID is the opaque identifier
// issued by the external identity provider, so it is a string rather than
// a generated UUID.
type User struct {
	ID           string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:50;default:'user'"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
