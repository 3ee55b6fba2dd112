package sector

import (
	"context"
	"errors"
	"fmt"

	"africahub/domain"
	"africahub/pkg/logger"
)

// SectorRepository contract interface
type SectorRepository interface {
	Create(ctx context.Context, sector *domain.Sector) error
	FindBySlug(ctx context.Context, slug string) (domain.Sector, error)
	FindAll(ctx context.Context) ([]domain.Sector, error)
}

type sectorService struct {
	sectorRepo SectorRepository
}

func NewSectorService(sectorRepo SectorRepository) *sectorService {
	return &sectorService{
		sectorRepo: sectorRepo,
	}
}

func (s *sectorService) GetAllSectors(ctx context.Context) ([]domain.Sector, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all sectors")
		return nil, fmt.Errorf("context error: %w", err)
	}

	sectors, err := s.sectorRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all sectors", err)
		return nil, err
	}

	return sectors, nil
}

func (s *sectorService) GetSectorBySlug(ctx context.Context, slug string) (domain.Sector, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get sector by slug")
		return domain.Sector{}, fmt.Errorf("context error: %w", err)
	}

	if slug == "" {
		logger.Error("Invalid sector slug")
		return domain.Sector{}, errors.New("invalid sector slug")
	}

	sector, err := s.sectorRepo.FindBySlug(ctx, slug)
	if err != nil {
		logger.Error("Failed to find sector", err)
		return domain.Sector{}, err
	}

	return sector, nil
}

func (s *sectorService) CreateSector(ctx context.Context, sector *domain.Sector) (*domain.Sector, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create sector")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if sector.Slug == "" || sector.Name == "" {
		logger.Error("Invalid sector data: slug and name are required")
		return nil, errors.New("sector slug and name are required")
	}

	if err := s.sectorRepo.Create(ctx, sector); err != nil {
		logger.Error("Failed to create sector", err)
		return nil, err
	}

	return sector, nil
}
