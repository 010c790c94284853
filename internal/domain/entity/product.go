package entity

import "github.com/google/uuid"

// Product belongs to exactly one category. Price is strictly positive.
type Product struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Description string
	Price       float64
	Category    *Category // The referenced category, loaded for detailed reads.
}
