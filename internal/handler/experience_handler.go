package handler

import (
	"errors"
	"net/http"

	"github.com/costeratours/experience-service/internal/availability"
	"github.com/costeratours/experience-service/internal/catalog"
	"github.com/costeratours/experience-service/internal/dto"
	"github.com/costeratours/experience-service/internal/models"
	"github.com/costeratours/experience-service/internal/service"
	"github.com/labstack/echo/v4"
)

type ExperienceHandler struct {
	svc        service.ExperienceService
	bookingSvc service.BookingService
	catalog    *catalog.Catalog
}

func NewExperienceHandler(svc service.ExperienceService, bookingSvc service.BookingService, cat *catalog.Catalog) *ExperienceHandler {
	return &ExperienceHandler{svc: svc, bookingSvc: bookingSvc, catalog: cat}
}

func (h *ExperienceHandler) RegisterRoutes(public, admin *echo.Group) {
	public.GET("/experiences", h.ListExperiences)
	public.GET("/experiences/:slug", h.GetExperience)

	admin.PUT("/experiences", h.UpsertExperience)
	admin.DELETE("/experiences/:id", h.DeleteExperience)
	admin.GET("/experiences/:id/availability", h.GetCapacity)
}

// ListExperiences serves the synchronized in-memory catalog, not a direct
// store read.
func (h *ExperienceHandler) ListExperiences(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Snapshot())
}

func (h *ExperienceHandler) GetExperience(c echo.Context) error {
	exp, err := h.svc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, catalog.Normalize(*exp))
}

func (h *ExperienceHandler) UpsertExperience(c echo.Context) error {
	var req dto.UpsertExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	exp := &models.Experience{
		ID:           req.ID,
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		PriceCOP:     req.PriceCOP,
		PriceUSD:     req.PriceUSD,
		MaxCapacity:  req.MaxCapacity,
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Includes:     dto.JSONStrings(req.Includes),
		Excludes:     dto.JSONStrings(req.Excludes),
		ImageURL:     req.ImageURL,
		Gallery:      dto.JSONStrings(req.Gallery),
	}

	if err := h.svc.Upsert(c.Request().Context(), exp); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, exp)
}

func (h *ExperienceHandler) DeleteExperience(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// GetCapacity layers remaining-capacity on top of the availability view for
// the back office.
func (h *ExperienceHandler) GetCapacity(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	exp, err := h.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	booked, err := h.bookingSvc.Availability(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	dates := make(map[string]dto.DateCapacity, len(booked))
	for date, guests := range booked {
		dates[date] = dto.DateCapacity{
			Booked:    guests,
			Remaining: availability.Remaining(exp.MaxCapacity, guests),
		}
	}

	return c.JSON(http.StatusOK, dto.CapacityResponse{
		ExperienceID: exp.ID,
		MaxCapacity:  exp.MaxCapacity,
		Dates:        dates,
	})
}
