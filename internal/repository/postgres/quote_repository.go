package postgres

import (
	"context"
	"fmt"

	"africahub/domain"

	"gorm.io/gorm"
)

type QuoteRepository struct {
	DB *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{
		DB: db,
	}
}

func (r *QuoteRepository) Create(ctx context.Context, quote *domain.QuoteRequest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(quote).Error; err != nil {
		return fmt.Errorf("failed to save quote request: %w", err)
	}

	return nil
}

func (r *QuoteRepository) FindByUser(ctx context.Context, userID string) ([]domain.QuoteRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var quotes []domain.QuoteRequest
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&quotes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query quote_requests: %w", err)
	}

	return quotes, nil
}

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		DB: db,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return nil
}
