package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// RBAC enforces role-based access control on top of Auth. The request's
// principal must carry one of the allowed roles. A typo in a route's role
// list is a wiring bug, so unknown role names panic at registration time.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	for _, role := range allowedRoles {
		if !domain.ValidRole(role) {
			panic("rbac: unknown role " + role)
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return unauthorized(c)
			}
			if err := domain.RequireRole(user.Role, allowedRoles...); err != nil {
				return echo.NewHTTPError(http.StatusForbidden, err.Error())
			}
			return next(c)
		}
	}
}
