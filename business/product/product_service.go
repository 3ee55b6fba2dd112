package product

import (
	"context"
	"errors"
	"fmt"

	"africahub/domain"
	"africahub/pkg/logger"

	"github.com/google/uuid"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindActiveByType(ctx context.Context, productType string) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type productService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *productService {
	return &productService{
		productRepo: productRepo,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		logger.Error("invalid product id")
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product by id")
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", err.Error())
		return nil, err
	}

	return &product, nil
}

func (s *productService) GetActiveByType(ctx context.Context, productType string) ([]domain.Product, error) {
	if productType == "" {
		logger.Error("invalid product type")
		return nil, errors.New("invalid product type")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get products by type")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindActiveByType(ctx, productType)
	if err != nil {
		logger.Error("failed to find products by type", err.Error())
		return nil, err
	}

	return products, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if product.Name == "" {
		logger.Error("Invalid product data: product name is required")
		return nil, errors.New("product name is required")
	}

	if product.ProductType == "" {
		logger.Error("Invalid product data: product type is required")
		return nil, errors.New("product type is required")
	}

	if product.Price <= 0 {
		logger.Error("Invalid product data: price must be positive")
		return nil, errors.New("price must be positive")
	}

	if len(product.CountryAvailability) == 0 {
		logger.Error("Invalid product data: country availability is required")
		return nil, errors.New("country availability is required")
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("Failed to create product", err)
		return nil, err
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when update product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == "" {
		logger.Error("invalid product id")
		return nil, errors.New("invalid product id")
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("Failed to update product", err)
		return nil, err
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when delete product")
		return fmt.Errorf("context error: %w", err)
	}

	if id == "" {
		logger.Error("invalid product id")
		return errors.New("invalid product id")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete product", err)
		return err
	}

	return nil
}
