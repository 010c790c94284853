package handler

import (
	"net/http"

	"eshop/internal/delivery/http/middleware"
	"eshop/internal/delivery/http/response"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderItemHandler holds dependencies for order-item handlers.
type OrderItemHandler struct {
	uc usecase.OrderItemUsecase
}

// NewOrderItemHandler is the constructor for OrderItemHandler, injected by Fx.
func NewOrderItemHandler(uc usecase.OrderItemUsecase) *OrderItemHandler {
	return &OrderItemHandler{uc: uc}
}

type createOrderItemRequest struct {
	OrderID   uuid.UUID `json:"orderId" validate:"required"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Amount    int       `json:"amount" validate:"required,gt=0"`
}

type updateOrderItemRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

// List handles GET /order_items. Admin only.
func (h *OrderItemHandler) List(c echo.Context) error {
	items, err := h.uc.ListOrderItems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderItemResponses(items), "")
}

// Get handles GET /order_items/:id. Admin only.
func (h *OrderItemHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := h.uc.GetOrderItem(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderItemResponse(item), "")
}

// Create handles POST /order_items for the authenticated user. The order must
// belong to that user.
func (h *OrderItemHandler) Create(c echo.Context) error {
	var req createOrderItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.CreateOrderItem(c.Request().Context(), middleware.UserName(c), usecase.CreateOrderItemInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Amount:    req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderItemResponse(item), "Order item created")
}

// Update handles PUT /order_items/:id for the authenticated user.
func (h *OrderItemHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateOrderItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.UpdateOrderItem(c.Request().Context(), id, middleware.UserName(c), usecase.UpdateOrderItemInput{
		Amount: req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderItemResponse(item), "Order item updated")
}

// Delete handles DELETE /order_items/:id for the authenticated user.
func (h *OrderItemHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOrderItem(c.Request().Context(), id, middleware.UserName(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order item deleted")
}
