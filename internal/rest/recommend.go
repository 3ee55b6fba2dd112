package rest

import (
	"context"
	"net/http"
	"time"

	"africahub/domain"
	"africahub/pkg/logger"
	"africahub/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendHandler struct {
		validate         *validator.Validate
		recommendService RecommendService
		timeout          time.Duration
	}

	RecommendService interface {
		StartStream(ctx context.Context, userID, insuranceType string, cfg domain.StreamConfig) (int, domain.StreamConfig, error)
		StopStream(userID string) bool
	}

	StreamRequest struct {
		UserID        string              `json:"user_id" validate:"required"`
		InsuranceType string              `json:"insurance_type" validate:"required"`
		StreamConfig  StreamConfigRequest `json:"stream_config"`
	}

	StreamConfigRequest struct {
		BatchSize       int  `json:"batch_size" validate:"gte=0,lte=50"`
		RefreshInterval int  `json:"refresh_interval" validate:"gte=0"`
		EnableRealTime  bool `json:"enable_real_time"`
	}

	StreamResponse struct {
		Success                bool                `json:"success"`
		InitialRecommendations int                 `json:"initial_recommendations"`
		StreamConfig           domain.StreamConfig `json:"stream_config"`
	}
)

func NewRecommendHandler(svc RecommendService) *RecommendHandler {
	return &RecommendHandler{
		validate:         validator.New(),
		recommendService: svc,
		timeout:          10 * time.Second,
	}
}

// StartStream computes and publishes the initial batch synchronously, then
// detaches the periodic loop. The caller only ever sees success or a 500;
// per-tick failures after this response are logged, not surfaced.
func (h *RecommendHandler) StartStream(c echo.Context) error {
	started := time.Now()
	metrics.RecommendStreamRequests.Inc()

	var req StreamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cfg := domain.StreamConfig{
		BatchSize:       req.StreamConfig.BatchSize,
		RefreshInterval: req.StreamConfig.RefreshInterval,
		EnableRealTime:  req.StreamConfig.EnableRealTime,
	}

	count, cfg, err := h.recommendService.StartStream(ctx, req.UserID, req.InsuranceType, cfg)
	if err != nil {
		logger.Error("Failed to start recommendation stream", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	metrics.RecommendStreamLatency.Observe(time.Since(started).Seconds())

	return c.JSON(http.StatusOK, StreamResponse{
		Success:                true,
		InitialRecommendations: count,
		StreamConfig:           cfg,
	})
}

// StopStream cancels a user's live stream.
func (h *RecommendHandler) StopStream(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "user_id is required"})
	}

	if !h.recommendService.StopStream(userID) {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "no active stream for user"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
