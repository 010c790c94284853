// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
)

// Response DTOs. Entities never leave the delivery layer directly; in
// particular the stored password hash stays out of every payload.

type categoryResponse struct {
	ID       uuid.UUID          `json:"id"`
	Name     string             `json:"name"`
	Products []*productResponse `json:"products,omitempty"`
}

type productResponse struct {
	ID          uuid.UUID         `json:"id"`
	CategoryID  uuid.UUID         `json:"categoryId"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       float64           `json:"price"`
	Category    *categoryResponse `json:"category,omitempty"`
}

type orderResponse struct {
	ID     uuid.UUID            `json:"id"`
	UserID uuid.UUID            `json:"userId"`
	Items  []*orderItemResponse `json:"items,omitempty"`
}

type orderItemResponse struct {
	ID        uuid.UUID        `json:"id"`
	OrderID   uuid.UUID        `json:"orderId"`
	ProductID uuid.UUID        `json:"productId"`
	Amount    int              `json:"amount"`
	Product   *productResponse `json:"product,omitempty"`
}

type roleResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type userResponse struct {
	ID        uuid.UUID     `json:"id"`
	UserName  string        `json:"userName"`
	Role      *roleResponse `json:"role,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func toCategoryResponse(category *entity.Category) *categoryResponse {
	if category == nil {
		return nil
	}

	resp := &categoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
	for _, product := range category.Products {
		resp.Products = append(resp.Products, toProductResponse(product))
	}

	return resp
}

func toCategoryResponses(categories []*entity.Category) []*categoryResponse {
	result := make([]*categoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, toCategoryResponse(category))
	}

	return result
}

func toProductResponse(product *entity.Product) *productResponse {
	if product == nil {
		return nil
	}

	return &productResponse{
		ID:          product.ID,
		CategoryID:  product.CategoryID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    toCategoryResponse(product.Category),
	}
}

func toProductResponses(products []*entity.Product) []*productResponse {
	result := make([]*productResponse, 0, len(products))
	for _, product := range products {
		result = append(result, toProductResponse(product))
	}

	return result
}

func toOrderResponse(order *entity.Order) *orderResponse {
	if order == nil {
		return nil
	}

	resp := &orderResponse{
		ID:     order.ID,
		UserID: order.UserID,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, toOrderItemResponse(item))
	}

	return resp
}

func toOrderResponses(orders []*entity.Order) []*orderResponse {
	result := make([]*orderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}

	return result
}

func toOrderItemResponse(item *entity.OrderItem) *orderItemResponse {
	if item == nil {
		return nil
	}

	return &orderItemResponse{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Amount:    item.Amount,
		Product:   toProductResponse(item.Product),
	}
}

func toOrderItemResponses(items []*entity.OrderItem) []*orderItemResponse {
	result := make([]*orderItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toOrderItemResponse(item))
	}

	return result
}

func toRoleResponse(role *entity.Role) *roleResponse {
	if role == nil {
		return nil
	}

	return &roleResponse{
		ID:   role.ID,
		Name: role.Name,
	}
}

func toRoleResponses(roles []*entity.Role) []*roleResponse {
	result := make([]*roleResponse, 0, len(roles))
	for _, role := range roles {
		result = append(result, toRoleResponse(role))
	}

	return result
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	return &userResponse{
		ID:        user.ID,
		UserName:  user.UserName,
		Role:      toRoleResponse(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []*userResponse {
	result := make([]*userResponse, 0, len(users))
	for _, user := range users {
		result = append(result, toUserResponse(user))
	}

	return result
}
