package quote

import (
	"context"
	"errors"
	"fmt"

	"africahub/domain"
	"africahub/pkg/logger"
)

const (
	SubjectQuoteRequest   = "Your quote request was received"
	EmailBodyQuoteRequest = `Hello %v,<br><br>we received your quote request for <b>%v</b>. A partner advisor will contact you shortly.<br><br>The AfricaHub team`
)

// QuoteRepository contract interface
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.QuoteRequest) error
	FindByUser(ctx context.Context, userID string) ([]domain.QuoteRequest, error)
}

// NotificationRepository persists in-app notification rows.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
}

// EmailRepository contract interface
type EmailRepository interface {
	SendEmail(toName, toEmail, subject, message string) (err error)
}

// ProductRepository is used to resolve the product a quote refers to.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (domain.Product, error)
}

type quoteService struct {
	quoteRepo   QuoteRepository
	notifRepo   NotificationRepository
	emailRepo   EmailRepository
	productRepo ProductRepository
}

func NewQuoteService(
	quoteRepo QuoteRepository,
	notifRepo NotificationRepository,
	emailRepo EmailRepository,
	productRepo ProductRepository,
) *quoteService {
	return &quoteService{
		quoteRepo:   quoteRepo,
		notifRepo:   notifRepo,
		emailRepo:   emailRepo,
		productRepo: productRepo,
	}
}

// CreateQuoteRequest saves the quote, writes the in-app notification row and
// sends the confirmation email. Email delivery failure does not roll back
// the stored rows.
func (s *quoteService) CreateQuoteRequest(ctx context.Context, quote *domain.QuoteRequest) (*domain.QuoteRequest, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create quote request")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if quote.UserID == "" || quote.ProductID == "" {
		return nil, errors.New("user id and product id are required")
	}

	if quote.Email == "" || quote.FullName == "" {
		return nil, errors.New("full name and email are required")
	}

	product, err := s.productRepo.FindByID(ctx, quote.ProductID)
	if err != nil {
		logger.Error("Failed to resolve product for quote", err)
		return nil, err
	}

	quote.Status = "pending"
	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		logger.Error("Failed to save quote request", err)
		return nil, err
	}

	notification := &domain.Notification{
		UserID:  quote.UserID,
		Title:   "Quote request received",
		Body:    fmt.Sprintf("We received your quote request for %s.", product.Name),
		Channel: "email",
	}
	if err := s.notifRepo.Create(ctx, notification); err != nil {
		logger.Error("Failed to save notification row", err)
		return nil, err
	}

	body := fmt.Sprintf(EmailBodyQuoteRequest, quote.FullName, product.Name)
	if err := s.emailRepo.SendEmail(quote.FullName, quote.Email, SubjectQuoteRequest, body); err != nil {
		// the quote and notification are already stored; delivery is retried
		// out of band by the mail provider
		logger.Error("Failed to send quote confirmation email", err)
	}

	return quote, nil
}

func (s *quoteService) GetQuotesByUser(ctx context.Context, userID string) ([]domain.QuoteRequest, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get quotes by user")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if userID == "" {
		return nil, errors.New("user id is required")
	}

	quotes, err := s.quoteRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to find quote requests", err)
		return nil, err
	}

	return quotes, nil
}
