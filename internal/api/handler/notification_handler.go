package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/middleware"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type NotificationHandler struct {
	notifications ports.NotificationService
}

func NewNotificationHandler(notifications ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// PendingApplications returns the badge count of pending applications on the
// principal's jobs. Count failures degrade to zero inside the service.
func (h *NotificationHandler) PendingApplications(c echo.Context) error {
	count, err := h.notifications.PendingApplications(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: count})
}

// UnseenResponses returns the badge count of decided but unseen applications.
func (h *NotificationHandler) UnseenResponses(c echo.Context) error {
	count, err := h.notifications.UnseenResponses(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: count})
}
