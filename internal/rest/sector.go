package rest

import (
	"context"
	"net/http"
	"time"

	"africahub/domain"
	"africahub/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type SectorService interface {
	GetAllSectors(ctx context.Context) ([]domain.Sector, error)
	GetSectorBySlug(ctx context.Context, slug string) (domain.Sector, error)
	CreateSector(ctx context.Context, sector *domain.Sector) (*domain.Sector, error)
}

type SectorHandler struct {
	sectorService SectorService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewSectorHandler(sectorService SectorService) *SectorHandler {
	return &SectorHandler{
		sectorService: sectorService,
		validator:     validator.New(),
		timeout:       10 * time.Second,
	}
}

type CreateSectorRequest struct {
	Slug        string `json:"slug" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (h *SectorHandler) GetAllSectors(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sectors, err := h.sectorService.GetAllSectors(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(sectors))
}

func (h *SectorHandler) GetSectorBySlug(c echo.Context) error {
	slug := c.Param("slug")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sector, err := h.sectorService.GetSectorBySlug(ctx, slug)
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(sector))
}

func (h *SectorHandler) CreateSector(c echo.Context) error {
	var req CreateSectorRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate create sector", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sector, err := h.sectorService.CreateSector(ctx, &domain.Sector{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(sector))
}
