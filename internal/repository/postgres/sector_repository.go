package postgres

import (
	"context"
	"errors"
	"fmt"

	"africahub/domain"

	"gorm.io/gorm"
)

type SectorRepository struct {
	DB *gorm.DB
}

func NewSectorRepository(db *gorm.DB) *SectorRepository {
	return &SectorRepository{
		DB: db,
	}
}

func (r *SectorRepository) Create(ctx context.Context, sector *domain.Sector) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(sector).Error; err != nil {
		return fmt.Errorf("failed to create sector: %w", err)
	}

	return nil
}

func (r *SectorRepository) FindBySlug(ctx context.Context, slug string) (domain.Sector, error) {
	if err := ctx.Err(); err != nil {
		return domain.Sector{}, fmt.Errorf("context error: %w", err)
	}

	var sector domain.Sector

	err := r.DB.WithContext(ctx).First(&sector, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Sector{}, errors.New("sector not found")
		}
		return domain.Sector{}, fmt.Errorf("failed to find sector: %w", err)
	}

	return sector, nil
}

func (r *SectorRepository) FindAll(ctx context.Context) ([]domain.Sector, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var sectors []domain.Sector
	err := r.DB.WithContext(ctx).Order("slug ASC").Find(&sectors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find sectors: %w", err)
	}

	return sectors, nil
}
