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

type QuoteService interface {
	CreateQuoteRequest(ctx context.Context, quote *domain.QuoteRequest) (*domain.QuoteRequest, error)
	GetQuotesByUser(ctx context.Context, userID string) ([]domain.QuoteRequest, error)
}

type QuoteHandler struct {
	quoteService QuoteService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewQuoteHandler(quoteService QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		validator:    validator.New(),
		timeout:      15 * time.Second,
	}
}

type CreateQuoteRequestBody struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	FullName  string `json:"full_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

func (h *QuoteHandler) CreateQuoteRequest(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok {
		logger.Error("Failed to get user_id from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req CreateQuoteRequestBody
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate quote request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	quote, err := h.quoteService.CreateQuoteRequest(ctx, &domain.QuoteRequest{
		UserID:    userID,
		ProductID: req.ProductID,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	})
	if err != nil {
		logger.Error("Failed to create quote request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(quote))
}

func (h *QuoteHandler) GetMyQuotes(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok {
		logger.Error("Failed to get user_id from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	quotes, err := h.quoteService.GetQuotesByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(quotes))
}
