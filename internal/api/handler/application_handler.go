package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/api/middleware"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type ApplicationHandler struct {
	apps ports.ApplicationService
}

func NewApplicationHandler(apps ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// Apply files the principal's bid on a job.
func (h *ApplicationHandler) Apply(c echo.Context) error {
	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.apps.Apply(c.Request().Context(), ports.ApplyInput{
		JobID:            req.JobID,
		FreelancerID:     middleware.CurrentUser(c).ID,
		ProposalText:     req.ProposalText,
		BidAmount:        req.BidAmount,
		ProposedDeadline: req.ProposedDeadline,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, app)
}

// ListForJob returns a job's applications to its owner, enriched with each
// applicant's public identity.
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	jobID, err := pathID(c, "job_id")
	if err != nil {
		return err
	}

	views, err := h.apps.ListForJob(c.Request().Context(), jobID, middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	if views == nil {
		views = []ports.JobApplication{}
	}
	return c.JSON(http.StatusOK, views)
}

// ListMine returns the principal's own applications with job headlines.
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	views, err := h.apps.ListMine(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	if views == nil {
		views = []ports.MyApplication{}
	}
	return c.JSON(http.StatusOK, views)
}

// Decide accepts or rejects an application. The status travels as a query
// parameter: PUT /applications/:id/status?status=accepted.
func (h *ApplicationHandler) Decide(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	status := domain.ApplicationStatus(c.QueryParam("status"))
	app, err := h.apps.Decide(c.Request().Context(), ports.DecideInput{
		ApplicationID: id,
		Status:        status,
		ActorID:       middleware.CurrentUser(c).ID,
	})
	if err != nil {
		return err
	}

	metrics.ApplicationDecisionsTotal.WithLabelValues(string(app.Status)).Inc()
	return c.JSON(http.StatusOK, app)
}
