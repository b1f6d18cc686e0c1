package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/driverportal/portal-api/internal/api/metrics"
	"github.com/driverportal/portal-api/internal/core/domain"
	"github.com/driverportal/portal-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CanDelete bool   `json:"canDelete"`
}

// List handles GET /api/users.
//
// @Summary      List users
// @Description  canDelete is false for the calling user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	p, err := actingUser(c)
	if err != nil {
		return err
	}

	users, err := h.service.ListUsers(c.Request().Context(), p.Username)
	if err != nil {
		return err
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse(u))
	}
	return c.JSON(http.StatusOK, out)
}

// Delete handles DELETE /api/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	p, err := actingUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.service.DeleteUser(c.Request().Context(), id, p.Username)
	metrics.UserAdminActionsTotal.WithLabelValues("delete", adminResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

// UpdateRole handles PUT /api/users/:id/role?role=X.
//
// @Summary      Change a user's role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int     true  "User id"
// @Param        role  query     string  true  "New role (USER, ADMIN, SUPER_ADMIN)"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id}/role [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	p, err := actingUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.service.UpdateUserRole(c.Request().Context(), id, c.QueryParam("role"), p.Username)
	metrics.UserAdminActionsTotal.WithLabelValues("update_role", adminResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User role updated successfully"})
}

func adminResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrSelfActionForbidden):
		return "self_refused"
	}
	return "error"
}
