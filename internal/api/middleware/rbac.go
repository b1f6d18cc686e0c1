package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/driverportal/portal-api/internal/api/metrics"
	"github.com/driverportal/portal-api/internal/core/domain"
	"github.com/driverportal/portal-api/internal/core/ports"
)

// RBAC enforces the access policy for op. It must run after Authenticate.
func RBAC(policy ports.AccessPolicy, op domain.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if err := policy.Authorize(p.Role, op); err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					metrics.AuthorizationDenialsTotal.WithLabelValues(string(op), p.Role.String()).Inc()
				}
				return err
			}
			return next(c)
		}
	}
}
