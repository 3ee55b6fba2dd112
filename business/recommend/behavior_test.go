package recommend

import (
	"math"
	"testing"
	"time"

	"africahub/domain"

	"gorm.io/datatypes"
)

func interactionWithDuration(seconds int) domain.Interaction {
	return domain.Interaction{
		UserID:          "u1",
		InteractionType: domain.InteractionView,
		DurationSeconds: &seconds,
	}
}

func interactionWithPrice(price float64) domain.Interaction {
	return domain.Interaction{
		UserID:          "u1",
		InteractionType: domain.InteractionView,
		Metadata:        datatypes.NewJSONType(domain.InteractionMetadata{PriceViewed: &price}),
	}
}

func interactionWithFeatures(features ...string) domain.Interaction {
	return domain.Interaction{
		UserID:          "u1",
		InteractionType: domain.InteractionView,
		Metadata:        datatypes.NewJSONType(domain.InteractionMetadata{FeaturesViewed: features}),
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnalyzeBehaviorEmptyHistory(t *testing.T) {
	profile := AnalyzeBehavior(nil)

	if !almostEqual(profile.EngagementLevel, 0.5) {
		t.Errorf("EngagementLevel = %v, want 0.5", profile.EngagementLevel)
	}
	if !almostEqual(profile.PriceSensitivity, 0.5) {
		t.Errorf("PriceSensitivity = %v, want 0.5", profile.PriceSensitivity)
	}
	if len(profile.FeaturePreferences) != 0 {
		t.Errorf("FeaturePreferences = %v, want empty", profile.FeaturePreferences)
	}
	if len(profile.PeakHours) != 0 {
		t.Errorf("PeakHours = %v, want empty", profile.PeakHours)
	}
	if !almostEqual(profile.ConversionProbability, 0.1) {
		t.Errorf("ConversionProbability = %v, want 0.1", profile.ConversionProbability)
	}
}

func TestEngagementLevel(t *testing.T) {
	tests := []struct {
		name         string
		interactions []domain.Interaction
		want         float64
	}{
		{
			name:         "no durations recorded",
			interactions: []domain.Interaction{{InteractionType: domain.InteractionView}},
			want:         0.5,
		},
		{
			name:         "average below saturation",
			interactions: []domain.Interaction{interactionWithDuration(150)},
			want:         0.5,
		},
		{
			name: "average clamps at one",
			interactions: []domain.Interaction{
				interactionWithDuration(600),
				interactionWithDuration(600),
			},
			want: 1.0,
		},
		{
			name: "interactions without duration do not dilute the average",
			interactions: []domain.Interaction{
				interactionWithDuration(300),
				{InteractionType: domain.InteractionView},
			},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engagementLevel(tt.interactions)
			if !almostEqual(got, tt.want) {
				t.Errorf("engagementLevel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriceSensitivity(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   float64
	}{
		{"budget average", []float64{400}, 0.8},
		{"middle average", []float64{1000}, 0.5},
		{"premium average", []float64{3000}, 0.2},
		{"lower boundary lands in middle band", []float64{500}, 0.5},
		{"upper boundary lands in middle band", []float64{2000}, 0.5},
		{"no prices viewed", nil, 0.5},
		{"mixed prices average decides", []float64{100, 500}, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var interactions []domain.Interaction
			for _, p := range tt.prices {
				interactions = append(interactions, interactionWithPrice(p))
			}

			got := priceSensitivity(interactions)
			if !almostEqual(got, tt.want) {
				t.Errorf("priceSensitivity(%v) = %v, want %v", tt.prices, got, tt.want)
			}
		})
	}
}

func TestFeaturePreferencesTopFiveWithStableTies(t *testing.T) {
	interactions := []domain.Interaction{
		interactionWithFeatures("f_zeta", "f_alpha"),
		interactionWithFeatures("f_zeta", "f_alpha"),
		interactionWithFeatures("f_zeta"),
		interactionWithFeatures("f_b", "f_c", "f_d", "f_e"),
	}

	got := featurePreferences(interactions)

	want := []string{"f_zeta", "f_alpha", "f_b", "f_c", "f_d"}
	if len(got) != len(want) {
		t.Fatalf("featurePreferences = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("featurePreferences[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPeakHoursStrictlyAboveBaseline(t *testing.T) {
	base := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	// 4 interactions: baseline is 4/24, so any hour with at least one
	// interaction qualifies
	interactions := []domain.Interaction{
		{CreatedAt: base.Add(9 * time.Hour)},
		{CreatedAt: base.Add(9 * time.Hour)},
		{CreatedAt: base.Add(9 * time.Hour)},
		{CreatedAt: base.Add(20 * time.Hour)},
	}

	got := peakHours(interactions)
	want := []int{9, 20}
	if len(got) != len(want) {
		t.Fatalf("peakHours = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("peakHours[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPeakHoursUniformSpreadHasNoPeaks(t *testing.T) {
	base := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	var interactions []domain.Interaction
	for h := 0; h < 24; h++ {
		interactions = append(interactions, domain.Interaction{
			CreatedAt: base.Add(time.Duration(h) * time.Hour),
		})
	}

	if got := peakHours(interactions); len(got) != 0 {
		t.Errorf("peakHours for uniform spread = %v, want none", got)
	}
}

func TestConversionProbability(t *testing.T) {
	click := domain.Interaction{InteractionType: domain.InteractionClick}
	view := domain.Interaction{InteractionType: domain.InteractionView}

	tests := []struct {
		name         string
		interactions []domain.Interaction
		want         float64
	}{
		{"empty history", nil, 0.1},
		// clickRate 0.5, engagement defaults 0.5: 0.6*0.5 + 0.4*0.5
		{"half clicks no durations", []domain.Interaction{click, view}, 0.5},
		// clickRate 1, engagement 0.5: 0.6 + 0.2
		{"all clicks", []domain.Interaction{click, click}, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conversionProbability(tt.interactions)
			if !almostEqual(got, tt.want) {
				t.Errorf("conversionProbability = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConversionProbabilityCap(t *testing.T) {
	seconds := 600
	click := domain.Interaction{
		InteractionType: domain.InteractionClick,
		DurationSeconds: &seconds,
	}

	// clickRate 1 and saturated engagement would give 1.0 uncapped
	got := conversionProbability([]domain.Interaction{click, click})
	if !almostEqual(got, 0.95) {
		t.Errorf("conversionProbability = %v, want cap 0.95", got)
	}
}
