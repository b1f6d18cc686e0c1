package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/driverportal/portal-api/internal/core/domain"
)

const principalKey = "principal"

// SetPrincipal attaches the authenticated caller to the request.
func SetPrincipal(c echo.Context, p *domain.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the caller attached by Authenticate, if any.
func PrincipalFrom(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(principalKey).(*domain.Principal)
	return p, ok && p != nil
}
