package interaction

import (
	"context"
	"errors"
	"fmt"

	"africahub/domain"
	"africahub/pkg/logger"
)

var validInteractionTypes = map[string]bool{
	domain.InteractionView:    true,
	domain.InteractionClick:   true,
	domain.InteractionCompare: true,
	domain.InteractionQuote:   true,
}

// InteractionRepository contract interface
type InteractionRepository interface {
	Create(ctx context.Context, interaction *domain.Interaction) error
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]domain.Interaction, error)
}

type interactionService struct {
	interactionRepo InteractionRepository
}

func NewInteractionService(interactionRepo InteractionRepository) *interactionService {
	return &interactionService{
		interactionRepo: interactionRepo,
	}
}

// Track validates and persists one user interaction. Metadata is checked
// here, at ingestion, so downstream behavioral analysis never sees bad
// values.
func (s *interactionService) Track(ctx context.Context, interaction *domain.Interaction) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when track interaction")
		return fmt.Errorf("context error: %w", err)
	}

	if interaction.UserID == "" {
		return errors.New("user id is required")
	}

	if !validInteractionTypes[interaction.InteractionType] {
		return fmt.Errorf("unknown interaction type: %s", interaction.InteractionType)
	}

	if interaction.DurationSeconds != nil && *interaction.DurationSeconds < 0 {
		return errors.New("duration_seconds must not be negative")
	}

	if err := interaction.Metadata.Data().Validate(); err != nil {
		return fmt.Errorf("invalid interaction metadata: %w", err)
	}

	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		logger.Error("Failed to save interaction", err)
		return err
	}

	return nil
}

func (s *interactionService) GetRecent(ctx context.Context, userID string, limit int) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get recent interactions")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if userID == "" {
		return nil, errors.New("user id is required")
	}

	if limit <= 0 || limit > 100 {
		limit = 100
	}

	interactions, err := s.interactionRepo.FindRecentByUser(ctx, userID, limit)
	if err != nil {
		logger.Error("Failed to find recent interactions", err)
		return nil, err
	}

	return interactions, nil
}
