package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/middleware"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviews.Create(c.Request().Context(), ports.CreateReviewInput{
		JobID:      req.JobID,
		ReviewerID: middleware.CurrentUser(c).ID,
		RevieweeID: req.RevieweeID,
		Rating:     req.Rating,
		Text:       req.Text,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ListByJob(c echo.Context) error {
	jobID, err := pathID(c, "job_id")
	if err != nil {
		return err
	}

	reviews, err := h.reviews.ListByJob(c.Request().Context(), jobID)
	if err != nil {
		return err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	return h.listForUser(c, userID)
}

// ListForProfile serves the nested /users/:id/reviews route.
func (h *ReviewHandler) ListForProfile(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return h.listForUser(c, userID)
}

func (h *ReviewHandler) listForUser(c echo.Context, userID int64) error {
	reviews, err := h.reviews.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return c.JSON(http.StatusOK, reviews)
}
