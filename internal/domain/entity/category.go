package entity

import "github.com/google/uuid"

// Category is a named grouping of products. Name length is validated at the
// boundary (3-50 characters).
type Category struct {
	ID       uuid.UUID
	Name     string
	Products []*Product // Products in this category. Populated only for detailed reads.
}
