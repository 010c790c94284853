package entity

import "github.com/google/uuid"

// Role names seeded at startup. Admin-only routes gate on RoleAdmin.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Role is a named permission group. Roles are static reference data seeded at
// startup and referenced, not owned, by users.
type Role struct {
	ID    uuid.UUID
	Name  string
	Users []*User // Users holding this role. Populated only when explicitly requested.
}
