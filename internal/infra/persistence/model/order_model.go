package model

import (
	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. UserID references users.id; deleting
// a user cascades to their orders.
type OrderModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`

	User  *UserModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Deleting an order cascades
// to its items; deleting a product cascades to items referencing it.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount    int       `gorm:"not null"`

	Order   *OrderModel   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
