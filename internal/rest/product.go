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
	"gorm.io/datatypes"
)

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	GetActiveByType(ctx context.Context, productType string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateProductRequest struct {
	Name                string   `json:"name" validate:"required"`
	Brand               string   `json:"brand"`
	Price               float64  `json:"price" validate:"required,gt=0"`
	Currency            string   `json:"currency"`
	ProductType         string   `json:"product_type" validate:"required"`
	SectorSlug          string   `json:"sector_slug"`
	Features            []string `json:"features"`
	CountryAvailability []string `json:"country_availability" validate:"required,min=1"`
	IsActive            *bool    `json:"is_active"`
}

type UpdateProductRequest struct {
	Name                string   `json:"name" validate:"required"`
	Brand               string   `json:"brand"`
	Price               float64  `json:"price" validate:"required,gt=0"`
	Currency            string   `json:"currency"`
	ProductType         string   `json:"product_type" validate:"required"`
	SectorSlug          string   `json:"sector_slug"`
	Features            []string `json:"features"`
	CountryAvailability []string `json:"country_availability" validate:"required,min=1"`
	IsActive            *bool    `json:"is_active"`
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	productType := c.QueryParam("type")
	if productType != "" {
		products, err := h.productService.GetActiveByType(ctx, productType)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
	}

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProductByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate create product", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product, err := h.productService.CreateProduct(ctx, &domain.Product{
		Name:                req.Name,
		Brand:               req.Brand,
		Price:               req.Price,
		Currency:            req.Currency,
		ProductType:         req.ProductType,
		SectorSlug:          req.SectorSlug,
		Features:            datatypes.NewJSONSlice(req.Features),
		CountryAvailability: datatypes.NewJSONSlice(req.CountryAvailability),
		IsActive:            isActive,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(product))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product, err := h.productService.UpdateProduct(ctx, &domain.Product{
		ID:                  id,
		Name:                req.Name,
		Brand:               req.Brand,
		Price:               req.Price,
		Currency:            req.Currency,
		ProductType:         req.ProductType,
		SectorSlug:          req.SectorSlug,
		Features:            datatypes.NewJSONSlice(req.Features),
		CountryAvailability: datatypes.NewJSONSlice(req.CountryAvailability),
		IsActive:            isActive,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.DeleteProduct(ctx, id); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("product deleted"))
}
