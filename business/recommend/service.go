package recommend

import (
	"context"
	"fmt"
	"time"

	"africahub/business/stream"
	"africahub/domain"
	"africahub/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// the analyzer only ever looks at this many recent interactions
const recentInteractionLimit = 100

// ---- Repository interfaces ----

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (domain.UserProfile, error)
}

type InteractionRepository interface {
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]domain.Interaction, error)
}

type ProductRepository interface {
	FindActiveByType(ctx context.Context, productType string) ([]domain.Product, error)
}

// Publisher pushes one batch onto the user's recommendation channel.
type Publisher interface {
	PublishUpdate(ctx context.Context, userID string, update domain.RecommendationUpdate) error
}

// ---- Usecase / Service ----

type Options struct {
	AlgorithmVersion string
	BatchSize        int
	RefreshInterval  time.Duration
	MaxUpdates       int
	MaxStreamAge     time.Duration
}

type Service struct {
	profileRepo     ProfileRepository
	interactionRepo InteractionRepository
	productRepo     ProductRepository
	publisher       Publisher
	scorer          *Scorer
	registry        *stream.Registry
	opts            Options
}

func NewService(
	profileRepo ProfileRepository,
	interactionRepo InteractionRepository,
	productRepo ProductRepository,
	publisher Publisher,
	scorer *Scorer,
	registry *stream.Registry,
	opts Options,
) *Service {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 5
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = 30 * time.Second
	}
	if opts.MaxUpdates <= 0 {
		opts.MaxUpdates = 10
	}
	if opts.MaxStreamAge <= 0 {
		opts.MaxStreamAge = 30 * time.Minute
	}

	return &Service{
		profileRepo:     profileRepo,
		interactionRepo: interactionRepo,
		productRepo:     productRepo,
		publisher:       publisher,
		scorer:          scorer,
		registry:        registry,
		opts:            opts,
	}
}

// StartStream runs one recommendation cycle synchronously, publishes the
// initial batch, and (when real-time updates are enabled) registers a
// periodic stream for the user. A user who already has a live stream keeps
// it; the request still gets its initial batch.
func (s *Service) StartStream(
	ctx context.Context,
	userID string,
	insuranceType string,
	cfg domain.StreamConfig,
) (int, domain.StreamConfig, error) {

	if err := ctx.Err(); err != nil {
		return 0, cfg, fmt.Errorf("context error: %w", err)
	}

	cfg = s.normalizeConfig(cfg)

	initial, err := s.RunCycle(ctx, userID, insuranceType, cfg.BatchSize, 0)
	if err != nil {
		return 0, cfg, err
	}

	if cfg.EnableRealTime {
		interval := time.Duration(cfg.RefreshInterval) * time.Second
		st := stream.New(userID, interval, s.opts.MaxStreamAge, s.opts.MaxUpdates,
			func(tickCtx context.Context, updateNumber int) error {
				_, tickErr := s.RunCycle(tickCtx, userID, insuranceType, cfg.BatchSize, updateNumber)
				return tickErr
			},
		)

		if err := s.registry.Register(userID, st); err != nil {
			if err == stream.ErrAlreadyStreaming {
				logger.Info("stream already live, skipping duplicate", "user_id", userID)
			} else {
				return 0, cfg, fmt.Errorf("failed to register stream: %w", err)
			}
		}
	}

	return len(initial), cfg, nil
}

// StopStream cancels the user's live stream. Reports whether one existed.
func (s *Service) StopStream(userID string) bool {
	return s.registry.Cancel(userID)
}

// RunCycle executes one fetch → analyze → score → diversify → filter →
// publish pass. updateNumber 0 marks the initial batch, anything higher a
// periodic tick.
func (s *Service) RunCycle(
	ctx context.Context,
	userID string,
	insuranceType string,
	batchSize int,
	updateNumber int,
) ([]domain.ScoredProduct, error) {

	started := time.Now()

	var (
		profile      domain.UserProfile
		interactions []domain.Interaction
		candidates   []domain.Product
	)

	// the three reads are independent; issue them together and wait for all
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.profileRepo.FindByUserID(gctx, userID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		interactions, err = s.interactionRepo.FindRecentByUser(gctx, userID, recentInteractionLimit)
		if err != nil {
			return fmt.Errorf("load interactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		candidates, err = s.productRepo.FindActiveByType(gctx, insuranceType)
		if err != nil {
			return fmt.Errorf("load candidates: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	behavior := AnalyzeBehavior(interactions)
	factors := BuildContext(profile, time.Now())

	scored := make([]domain.ScoredProduct, 0, len(candidates))
	for _, product := range candidates {
		scored = append(scored, s.scorer.ScoreProduct(product, behavior, factors))
	}

	scored = DiversifyByBrand(scored)
	scored = FilterByCountry(scored, factors.Country)

	if batchSize > 0 && len(scored) > batchSize {
		scored = scored[:batchSize]
	}

	update := domain.RecommendationUpdate{
		Recommendations: scored,
		Metadata:        s.buildMetadata(started, updateNumber),
	}

	if err := s.publisher.PublishUpdate(ctx, userID, update); err != nil {
		return nil, fmt.Errorf("publish recommendations: %w", err)
	}

	kind := "initial"
	if updateNumber > 0 {
		kind = "periodic"
	}
	CyclesTotal.WithLabelValues(kind).Inc()
	CycleDuration.Observe(time.Since(started).Seconds())

	logger.Debug("recommendation cycle complete",
		"user_id", userID,
		"insurance_type", insuranceType,
		"update_number", updateNumber,
		"candidates", len(candidates),
		"published", len(scored),
	)

	return scored, nil
}

func (s *Service) normalizeConfig(cfg domain.StreamConfig) domain.StreamConfig {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = s.opts.BatchSize
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = int(s.opts.RefreshInterval / time.Second)
	}

	return cfg
}

func (s *Service) buildMetadata(started time.Time, updateNumber int) domain.UpdateMetadata {
	meta := domain.UpdateMetadata{
		ProcessingTimeMS: time.Since(started).Milliseconds(),
	}

	if updateNumber == 0 {
		meta.AlgorithmVersion = s.opts.AlgorithmVersion
	} else {
		meta.UpdateNumber = updateNumber
		meta.IsPeriodicUpdate = true
	}

	return meta
}
