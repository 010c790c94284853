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

// OrderHandler holds dependencies for order-related handlers. The admin
// endpoints see every order; the /user/orders endpoints act on behalf of the
// authenticated username.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type createOrderRequest struct {
	Items []createOrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

type createOrderLineRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Amount    int       `json:"amount" validate:"required,gt=0"`
}

// List handles GET /orders. Admin only.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}

// Get handles GET /orders/:id. Admin only.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

// Delete handles DELETE /orders/:id. Admin only.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted")
}

// CreateUserOrder handles POST /user/orders for the authenticated user.
func (h *OrderHandler) CreateUserOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.CreateOrderInput{}
	for _, line := range req.Items {
		input.Items = append(input.Items, usecase.CreateOrderItemLine{
			ProductID: line.ProductID,
			Amount:    line.Amount,
		})
	}

	order, err := h.uc.CreateUserOrder(c.Request().Context(), middleware.UserName(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order placed")
}

// ListUserOrders handles GET /user/orders for the authenticated user.
func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	orders, err := h.uc.ListUserOrders(c.Request().Context(), middleware.UserName(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}

// DeleteUserOrder handles DELETE /user/orders/:id for the authenticated user.
func (h *OrderHandler) DeleteUserOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUserOrder(c.Request().Context(), id, middleware.UserName(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted")
}
