package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/middleware"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Initiate records a pending payment and returns the UPI deep link.
func (h *PaymentHandler) Initiate(c echo.Context) error {
	var req initiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	intent, err := h.payments.Initiate(c.Request().Context(), ports.InitiatePaymentInput{
		JobID:      req.JobID,
		ReceiverID: req.ReceiverID,
		Amount:     req.Amount,
		ActorID:    middleware.CurrentUser(c).ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, intent)
}

// Verify marks a payment completed: POST /payments/verify/:id?txn_id=REF.
func (h *PaymentHandler) Verify(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	txnID := c.QueryParam("txn_id")
	if txnID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "txn_id is required")
	}

	payment, err := h.payments.Verify(c.Request().Context(), id, txnID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}
