// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"eshop/internal/delivery/http/middleware"
	"eshop/internal/delivery/http/router/handler"
	"eshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	CategoryHandler  *handler.CategoryHandler
	ProductHandler   *handler.ProductHandler
	OrderHandler     *handler.OrderHandler
	OrderItemHandler *handler.OrderItemHandler
	RoleHandler      *handler.RoleHandler
	UserHandler      *handler.UserHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authenticate := r.params.AuthMiddleware.Authenticate
	requireAdmin := r.params.AuthMiddleware.RequireRole(entity.RoleAdmin)

	api := e.Group("/api/v1")

	categories := api.Group("/categories")
	{
		categories.GET("", r.params.CategoryHandler.List)
		categories.GET("/:id", r.params.CategoryHandler.Get)
		categories.POST("", r.params.CategoryHandler.Create, authenticate, requireAdmin)
		categories.PUT("/:id", r.params.CategoryHandler.Update, authenticate, requireAdmin)
		categories.DELETE("/:id", r.params.CategoryHandler.Delete, authenticate, requireAdmin)
	}

	products := api.Group("/products")
	{
		products.GET("", r.params.ProductHandler.List)
		products.GET("/query", r.params.ProductHandler.Query)
		products.GET("/:id", r.params.ProductHandler.Get)
		products.POST("", r.params.ProductHandler.Create, authenticate, requireAdmin)
		products.PUT("/:id", r.params.ProductHandler.Update, authenticate, requireAdmin)
		products.DELETE("/:id", r.params.ProductHandler.Delete, authenticate, requireAdmin)
	}

	orders := api.Group("/orders", authenticate, requireAdmin)
	{
		orders.GET("", r.params.OrderHandler.List)
		orders.GET("/:id", r.params.OrderHandler.Get)
		orders.DELETE("/:id", r.params.OrderHandler.Delete)
	}

	// Order endpoints scoped to the authenticated user.
	userOrders := api.Group("/user/orders", authenticate)
	{
		userOrders.POST("", r.params.OrderHandler.CreateUserOrder)
		userOrders.GET("", r.params.OrderHandler.ListUserOrders)
		userOrders.DELETE("/:id", r.params.OrderHandler.DeleteUserOrder)
	}

	orderItems := api.Group("/order_items", authenticate)
	{
		orderItems.GET("", r.params.OrderItemHandler.List, requireAdmin)
		orderItems.GET("/:id", r.params.OrderItemHandler.Get, requireAdmin)
		orderItems.POST("", r.params.OrderItemHandler.Create)
		orderItems.PUT("/:id", r.params.OrderItemHandler.Update)
		orderItems.DELETE("/:id", r.params.OrderItemHandler.Delete)
	}

	roles := api.Group("/roles", authenticate, requireAdmin)
	{
		roles.GET("", r.params.RoleHandler.List)
		roles.GET("/:id", r.params.RoleHandler.Get)
		roles.GET("/:role/users", r.params.RoleHandler.Users)
	}

	users := api.Group("/users")
	{
		users.POST("", r.params.UserHandler.Create)
		users.POST("/authenticate", r.params.UserHandler.Authenticate)
		users.GET("", r.params.UserHandler.List, authenticate, requireAdmin)
		users.GET("/:id", r.params.UserHandler.Get, authenticate, requireAdmin)
		users.PUT("/:id", r.params.UserHandler.Update, authenticate)
		users.DELETE("/:id", r.params.UserHandler.Delete, authenticate)
	}
}
