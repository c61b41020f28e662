package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/middleware"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type GigHandler struct {
	gigs ports.GigService
}

func NewGigHandler(gigs ports.GigService) *GigHandler {
	return &GigHandler{gigs: gigs}
}

func (h *GigHandler) Create(c echo.Context) error {
	var req createGigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	gig, err := h.gigs.Create(c.Request().Context(), ports.CreateGigInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		DeliveryDays: req.DeliveryDays,
		FreelancerID: middleware.CurrentUser(c).ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, gig)
}

func (h *GigHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	gig, err := h.gigs.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gig)
}

// List returns active gigs; ?category= narrows the result.
func (h *GigHandler) List(c echo.Context) error {
	gigs, err := h.gigs.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	if gigs == nil {
		gigs = []domain.Gig{}
	}
	return c.JSON(http.StatusOK, gigs)
}

func (h *GigHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateGigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	gig, err := h.gigs.Update(c.Request().Context(), ports.UpdateGigInput{
		GigID:        id,
		ActorID:      middleware.CurrentUser(c).ID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		DeliveryDays: req.DeliveryDays,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gig)
}

func (h *GigHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.gigs.Delete(c.Request().Context(), id, middleware.CurrentUser(c).ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "gig deleted"})
}
