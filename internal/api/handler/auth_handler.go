package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/api/middleware"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates an account and returns a fresh token. Duplicate emails
// fail with 400, matching the public contract.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusOK, newTokenResponse(token, user))
}

// Login authenticates form-encoded credentials. The username field carries
// the email address.
func (h *AuthHandler) Login(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	token, user, err := h.authService.Login(c.Request().Context(), email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, newTokenResponse(token, user))
}

// Protected is the auth smoke endpoint: it echoes the resolved principal.
func (h *AuthHandler) Protected(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "authenticated",
		"user":    newUserSummary(user),
	})
}

func newTokenResponse(token string, user *domain.User) tokenResponse {
	return tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        newUserSummary(user),
	}
}

func newUserSummary(user *domain.User) userSummary {
	return userSummary{ID: user.ID, Name: user.Name, Email: user.Email}
}
