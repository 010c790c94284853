// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity record. The username is unique across all users and the
// password is stored only in its salted, keyed-hash form.
type User struct {
	ID             uuid.UUID // The unique identifier for the user.
	UserName       string    // Login identifier, unique across all users.
	HashedPassword string    // base64(salt || HMAC-SHA256(key, salt || password)).
	RoleID         uuid.UUID // Foreign key of the owning role. Every user has exactly one role.
	Role           *Role     // The owning role, loaded with the user.
	Orders         []*Order  // Orders placed by this user. The user owns them (cascade delete).
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
