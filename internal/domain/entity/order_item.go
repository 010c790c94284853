package entity

import "github.com/google/uuid"

// OrderItem is a line of an order referencing exactly one product with a
// positive amount.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Amount    int
	Order     *Order
	Product   *Product
}
