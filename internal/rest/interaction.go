package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"africahub/domain"
	"africahub/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type InteractionService interface {
	Track(ctx context.Context, interaction *domain.Interaction) error
	GetRecent(ctx context.Context, userID string, limit int) ([]domain.Interaction, error)
}

type InteractionHandler struct {
	interactionService InteractionService
	validator          *validator.Validate
	timeout            time.Duration
}

func NewInteractionHandler(interactionService InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
		validator:          validator.New(),
		timeout:            10 * time.Second,
	}
}

type TrackInteractionRequest struct {
	InteractionType string                     `json:"interaction_type" validate:"required,oneof=view click compare quote_request"`
	ProductID       string                     `json:"product_id"`
	DurationSeconds *int                       `json:"duration_seconds" validate:"omitempty,gte=0"`
	Metadata        domain.InteractionMetadata `json:"metadata"`
}

func (h *InteractionHandler) Track(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok {
		logger.Error("Failed to get user_id from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req TrackInteractionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate interaction", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	interaction := &domain.Interaction{
		UserID:          userID,
		InteractionType: req.InteractionType,
		ProductID:       req.ProductID,
		DurationSeconds: req.DurationSeconds,
		Metadata:        datatypes.NewJSONType(req.Metadata),
	}

	if err := h.interactionService.Track(ctx, interaction); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(interaction))
}

func (h *InteractionHandler) GetRecent(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok {
		logger.Error("Failed to get user_id from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	limit := 100
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	interactions, err := h.interactionService.GetRecent(ctx, userID, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(interactions))
}
