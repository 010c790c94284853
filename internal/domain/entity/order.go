package entity

import "github.com/google/uuid"

// Order belongs to exactly one user and owns its order items: deleting an
// order removes its items with it.
type Order struct {
	ID     uuid.UUID
	UserID uuid.UUID
	User   *User
	Items  []*OrderItem
}
