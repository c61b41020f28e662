package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// AIHandler proxies the moderation sidecars.
type AIHandler struct {
	scam ports.ScamService
}

func NewAIHandler(scam ports.ScamService) *AIHandler {
	return &AIHandler{scam: scam}
}

// MLCheck runs a message through the scam classifier.
func (h *AIHandler) MLCheck(c echo.Context) error {
	var req scamCheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	verdict, err := h.scam.Check(c.Request().Context(), req.Message)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "scam classifier unavailable")
	}

	label := "clean"
	if verdict.IsScam {
		label = "scam"
	}
	metrics.ScamChecksTotal.WithLabelValues(label).Inc()

	return c.JSON(http.StatusOK, verdict)
}

// RasaCheck resolves a message's intent via the NLU sidecar.
func (h *AIHandler) RasaCheck(c echo.Context) error {
	var req scamCheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	intent, err := h.scam.Intent(c.Request().Context(), req.Message)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "intent service unavailable")
	}
	return c.JSON(http.StatusOK, intent)
}
