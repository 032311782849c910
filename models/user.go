// models/user.go
package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of account categories. It governs which actions a
// caller may perform; invalid values are rejected at parse time and never
// stored.
type Role string

const (
	RoleTuli   Role = "tuli"   // deaf user
	RoleDengar Role = "dengar" // hearing user
	RoleAdmin  Role = "admin"
	RoleJBI    Role = "jbi"   // sign-language interpreter
	RoleDosen  Role = "dosen" // lecturer
)

// ParseRole normalizes and validates a role string.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(s)); r {
	case RoleTuli, RoleDengar, RoleAdmin, RoleJBI, RoleDosen:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// AuthContext is the verified identity the auth layer hands to every
// service call. The role is an explicit field here; it is never attached to
// or mutated on a shared user record.
type AuthContext struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the caller holds the admin role.
func (a AuthContext) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// User represents a platform account.
type User struct {
	ID                int64     `bson:"id" json:"id"`
	Email             string    `bson:"email" json:"email"`
	FullName          string    `bson:"full_name" json:"full_name"`
	BirthDate         string    `bson:"birth_date" json:"birth_date"` // "YYYY-MM-DD"
	PasswordHash      string    `bson:"password_hash" json:"-"`
	IsActive          bool      `bson:"is_active" json:"is_active"`
	IdentityType      Role      `bson:"identity_type" json:"identity_type"`
	Institution       string    `bson:"institution,omitempty" json:"institution,omitempty"`
	ProfilePictureURL string    `bson:"profile_picture_url,omitempty" json:"profile_picture_url,omitempty"`
	Points            int       `bson:"points" json:"points"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRegistration carries the fields of a signup request.
type UserRegistration struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	FullName     string `json:"full_name" binding:"required"`
	BirthDate    string `json:"birth_date" binding:"required"`
	IdentityType string `json:"identity_type" binding:"required"`
	Institution  string `json:"institution"`
}

// UserProfileUpdate carries the optional fields of a partial profile update.
// Nil pointers mean "leave unchanged".
type UserProfileUpdate struct {
	FullName          *string `json:"full_name,omitempty"`
	BirthDate         *string `json:"birth_date,omitempty"`
	Institution       *string `json:"institution,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
}
