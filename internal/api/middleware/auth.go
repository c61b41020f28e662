package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// ContextUserKey is the echo context key under which the authenticated
// principal is stored.
const ContextUserKey = "user"

// Authenticator resolves a bearer token to a stored user. The auth service
// satisfies it; the narrow interface keeps the middleware testable without
// the full service surface.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Auth extracts the bearer token, resolves it to a user, and injects the
// principal into the request context. Every failure is an indistinguishable
// 401 carrying the WWW-Authenticate challenge.
func Auth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return unauthorized(c)
			}

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return unauthorized(c)
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(c echo.Context) error {
	metrics.AuthFailuresTotal.Inc()
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
}

// CurrentUser returns the principal injected by Auth, or nil when the route
// is public.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(ContextUserKey).(*domain.User)
	return user
}
