package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"

	"africahub/business/stream"
	"africahub/domain"

	"gorm.io/datatypes"
)

type fakeProfileRepo struct {
	profile domain.UserProfile
	err     error
}

func (f *fakeProfileRepo) FindByUserID(ctx context.Context, userID string) (domain.UserProfile, error) {
	return f.profile, f.err
}

type fakeInteractionRepo struct {
	interactions []domain.Interaction
	err          error
}

func (f *fakeInteractionRepo) FindRecentByUser(ctx context.Context, userID string, limit int) ([]domain.Interaction, error) {
	return f.interactions, f.err
}

type fakeProductRepo struct {
	products []domain.Product
	err      error
}

func (f *fakeProductRepo) FindActiveByType(ctx context.Context, productType string) ([]domain.Product, error) {
	return f.products, f.err
}

type fakePublisher struct {
	mu      sync.Mutex
	updates []domain.RecommendationUpdate
	err     error
}

func (f *fakePublisher) PublishUpdate(ctx context.Context, userID string, update domain.RecommendationUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, update)
	return nil
}

func (f *fakePublisher) published() []domain.RecommendationUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.RecommendationUpdate, len(f.updates))
	copy(out, f.updates)
	return out
}

func newTestService(
	profiles *fakeProfileRepo,
	interactions *fakeInteractionRepo,
	products *fakeProductRepo,
	publisher *fakePublisher,
) *Service {
	return NewService(
		profiles,
		interactions,
		products,
		publisher,
		NewScorer(FixedTrendScorer{Value: 0.7}),
		stream.NewRegistry(),
		Options{AlgorithmVersion: "v2.1"},
	)
}

func TestRunCycleEndToEnd(t *testing.T) {
	seconds := 600
	profiles := &fakeProfileRepo{
		profile: domain.UserProfile{UserID: "u1", Country: "Nigeria"},
	}
	interactions := &fakeInteractionRepo{
		interactions: []domain.Interaction{
			{
				UserID:          "u1",
				InteractionType: domain.InteractionClick,
				DurationSeconds: &seconds,
				Metadata: datatypes.NewJSONType(domain.InteractionMetadata{
					FeaturesViewed: []string{"mobile_payments"},
				}),
			},
		},
	}
	products := &fakeProductRepo{
		products: []domain.Product{
			testProduct("p1", "AcmeSure", 400, []string{"mobile_payments"}, []string{"Nigeria"}),
			testProduct("p2", "SafariTrust", 900, nil, []string{"Kenya"}),
		},
	}
	publisher := &fakePublisher{}

	svc := newTestService(profiles, interactions, products, publisher)

	scored, err := svc.RunCycle(context.Background(), "u1", "auto", 5, 0)
	if err != nil {
		t.Fatalf("RunCycle failed: %v", err)
	}

	// p2 is not available in Nigeria; only p1 may survive
	if len(scored) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(scored))
	}
	if scored[0].Product.ID != "p1" {
		t.Errorf("recommended %q, want p1", scored[0].Product.ID)
	}
	if scored[0].Score.OverallScore <= 0 || scored[0].Score.OverallScore > 1 {
		t.Errorf("OverallScore = %v, want within (0, 1]", scored[0].Score.OverallScore)
	}

	updates := publisher.published()
	if len(updates) != 1 {
		t.Fatalf("published %d updates, want 1", len(updates))
	}
	meta := updates[0].Metadata
	if meta.AlgorithmVersion != "v2.1" {
		t.Errorf("AlgorithmVersion = %q, want v2.1 on the initial batch", meta.AlgorithmVersion)
	}
	if meta.IsPeriodicUpdate {
		t.Error("initial batch marked as periodic")
	}
}

func TestRunCyclePeriodicMetadata(t *testing.T) {
	publisher := &fakePublisher{}
	svc := newTestService(
		&fakeProfileRepo{profile: domain.UserProfile{UserID: "u1", Country: "Kenya"}},
		&fakeInteractionRepo{},
		&fakeProductRepo{products: []domain.Product{
			testProduct("p1", "A", 400, nil, []string{"Kenya"}),
		}},
		publisher,
	)

	if _, err := svc.RunCycle(context.Background(), "u1", "auto", 5, 3); err != nil {
		t.Fatalf("RunCycle failed: %v", err)
	}

	meta := publisher.published()[0].Metadata
	if !meta.IsPeriodicUpdate {
		t.Error("periodic update not flagged")
	}
	if meta.UpdateNumber != 3 {
		t.Errorf("UpdateNumber = %d, want 3", meta.UpdateNumber)
	}
	if meta.AlgorithmVersion != "" {
		t.Errorf("AlgorithmVersion = %q, want empty on periodic updates", meta.AlgorithmVersion)
	}
}

func TestRunCycleBatchSizeTruncates(t *testing.T) {
	products := make([]domain.Product, 0, 8)
	brands := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for i, b := range brands {
		products = append(products, testProduct(string(rune('a'+i)), b, 400, nil, []string{"Ghana"}))
	}

	publisher := &fakePublisher{}
	svc := newTestService(
		&fakeProfileRepo{profile: domain.UserProfile{UserID: "u1", Country: "Ghana"}},
		&fakeInteractionRepo{},
		&fakeProductRepo{products: products},
		publisher,
	)

	scored, err := svc.RunCycle(context.Background(), "u1", "auto", 3, 0)
	if err != nil {
		t.Fatalf("RunCycle failed: %v", err)
	}
	if len(scored) != 3 {
		t.Errorf("got %d recommendations, want batch size 3", len(scored))
	}
}

func TestRunCyclePropagatesFetchErrors(t *testing.T) {
	svc := newTestService(
		&fakeProfileRepo{err: errors.New("profile store down")},
		&fakeInteractionRepo{},
		&fakeProductRepo{},
		&fakePublisher{},
	)

	if _, err := svc.RunCycle(context.Background(), "u1", "auto", 5, 0); err == nil {
		t.Fatal("RunCycle succeeded despite a failing profile fetch")
	}
}

func TestRunCyclePropagatesPublishErrors(t *testing.T) {
	svc := newTestService(
		&fakeProfileRepo{profile: domain.UserProfile{UserID: "u1", Country: "Kenya"}},
		&fakeInteractionRepo{},
		&fakeProductRepo{products: []domain.Product{
			testProduct("p1", "A", 400, nil, []string{"Kenya"}),
		}},
		&fakePublisher{err: errors.New("redis unreachable")},
	)

	if _, err := svc.RunCycle(context.Background(), "u1", "auto", 5, 0); err == nil {
		t.Fatal("RunCycle succeeded despite a failing publish")
	}
}

func TestStartStreamWithoutRealTime(t *testing.T) {
	publisher := &fakePublisher{}
	svc := newTestService(
		&fakeProfileRepo{profile: domain.UserProfile{UserID: "u1", Country: "Kenya"}},
		&fakeInteractionRepo{},
		&fakeProductRepo{products: []domain.Product{
			testProduct("p1", "A", 400, nil, []string{"Kenya"}),
		}},
		publisher,
	)

	count, cfg, err := svc.StartStream(context.Background(), "u1", "auto", domain.StreamConfig{})
	if err != nil {
		t.Fatalf("StartStream failed: %v", err)
	}
	if count != 1 {
		t.Errorf("initial batch size = %d, want 1", count)
	}
	if cfg.BatchSize != 5 || cfg.RefreshInterval != 30 {
		t.Errorf("normalized config = %+v, want defaults 5/30", cfg)
	}

	// no real-time flag, so no stream may linger
	if svc.StopStream("u1") {
		t.Error("StopStream found a stream that should never have started")
	}
}

func TestStartStreamRealTimeRegistersAndStops(t *testing.T) {
	publisher := &fakePublisher{}
	svc := newTestService(
		&fakeProfileRepo{profile: domain.UserProfile{UserID: "u1", Country: "Kenya"}},
		&fakeInteractionRepo{},
		&fakeProductRepo{products: []domain.Product{
			testProduct("p1", "A", 400, nil, []string{"Kenya"}),
		}},
		publisher,
	)

	cfg := domain.StreamConfig{EnableRealTime: true, RefreshInterval: 3600}
	if _, _, err := svc.StartStream(context.Background(), "u1", "auto", cfg); err != nil {
		t.Fatalf("StartStream failed: %v", err)
	}

	// duplicate request keeps the existing stream and still succeeds
	count, _, err := svc.StartStream(context.Background(), "u1", "auto", cfg)
	if err != nil {
		t.Fatalf("duplicate StartStream failed: %v", err)
	}
	if count != 1 {
		t.Errorf("duplicate request initial batch = %d, want 1", count)
	}

	if !svc.StopStream("u1") {
		t.Error("StopStream found no stream to cancel")
	}
	if svc.StopStream("u1") {
		t.Error("second StopStream still found a stream")
	}

	// both requests published their initial batch
	if got := len(publisher.published()); got != 2 {
		t.Errorf("published %d updates, want 2 initial batches", got)
	}
}
