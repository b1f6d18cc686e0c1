package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/driverportal/portal-api/internal/api/middleware"
	"github.com/driverportal/portal-api/internal/core/domain"
)

// actingUser returns the principal attached by the Authenticate middleware.
// Its absence means the route was wired without authentication.
func actingUser(c echo.Context) (*domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return p, nil
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Errorf(domain.ErrInvalidInput, "invalid id %q", c.Param("id"))
	}
	return id, nil
}

// bindAndValidate decodes the request body into req and validates it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.Errorf(domain.ErrInvalidInput, "invalid payload")
	}
	return c.Validate(req)
}
