package handler

import (
	"net/http"

	"eshop/internal/delivery/http/response"
	"eshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RoleHandler holds dependencies for role-related handlers. All role
// endpoints are admin only.
type RoleHandler struct {
	uc usecase.RoleUsecase
}

// NewRoleHandler is the constructor for RoleHandler, injected by Fx.
func NewRoleHandler(uc usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// List handles GET /roles.
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.uc.ListRoles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRoleResponses(roles), "")
}

// Get handles GET /roles/:id.
func (h *RoleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	role, err := h.uc.GetRole(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRoleResponse(role), "")
}

// Users handles GET /roles/:role/users, listing the users holding the named
// role.
func (h *RoleHandler) Users(c echo.Context) error {
	users, err := h.uc.GetUsersWithRole(c.Request().Context(), c.Param("role"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(users), "")
}
