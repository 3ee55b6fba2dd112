package recommend

import (
	"sort"

	"africahub/domain"
)

// engagement saturates once a user has spent this many seconds per view
const maxEngagementSeconds = 300.0

// price averages below/above these bounds mark a user as budget/premium
const (
	budgetPriceBound  = 500.0
	premiumPriceBound = 2000.0
)

const maxFeaturePreferences = 5

// BehavioralProfile holds the five signals derived from recent interaction
// history. Recomputed fresh every cycle, never cached.
type BehavioralProfile struct {
	EngagementLevel       float64
	PriceSensitivity      float64
	FeaturePreferences    []string
	PeakHours             []int
	ConversionProbability float64
}

// AnalyzeBehavior derives the behavioral profile from up to the last 100
// interactions. Every branch has a numeric fallback, so this never fails.
func AnalyzeBehavior(interactions []domain.Interaction) BehavioralProfile {
	return BehavioralProfile{
		EngagementLevel:       engagementLevel(interactions),
		PriceSensitivity:      priceSensitivity(interactions),
		FeaturePreferences:    featurePreferences(interactions),
		PeakHours:             peakHours(interactions),
		ConversionProbability: conversionProbability(interactions),
	}
}

// engagementLevel is the mean recorded duration normalized by
// maxEngagementSeconds and clamped to 1. Neutral 0.5 when no interaction
// carries a duration.
func engagementLevel(interactions []domain.Interaction) float64 {
	total := 0.0
	counted := 0
	for _, in := range interactions {
		if in.DurationSeconds == nil {
			continue
		}
		total += float64(*in.DurationSeconds)
		counted++
	}

	if counted == 0 {
		return 0.5
	}

	avg := total / float64(counted)
	level := avg / maxEngagementSeconds
	if level > 1 {
		level = 1
	}

	return level
}

// priceSensitivity is a step function of the mean viewed price: cheap
// averages mark a price-sensitive user (0.8), expensive averages a premium
// one (0.2). The boundary values themselves fall into the middle band.
func priceSensitivity(interactions []domain.Interaction) float64 {
	total := 0.0
	counted := 0
	for _, in := range interactions {
		meta := in.Metadata.Data()
		if meta.PriceViewed == nil {
			continue
		}
		total += *meta.PriceViewed
		counted++
	}

	if counted == 0 {
		return 0.5
	}

	avg := total / float64(counted)
	switch {
	case avg < budgetPriceBound:
		return 0.8
	case avg > premiumPriceBound:
		return 0.2
	default:
		return 0.5
	}
}

// featurePreferences returns the top 5 feature tags by frequency across
// interaction metadata. Ties break lexicographically so the output is stable.
func featurePreferences(interactions []domain.Interaction) []string {
	counts := make(map[string]int)
	for _, in := range interactions {
		for _, f := range in.Metadata.Data().FeaturesViewed {
			counts[f]++
		}
	}

	if len(counts) == 0 {
		return nil
	}

	features := make([]string, 0, len(counts))
	for f := range counts {
		features = append(features, f)
	}

	sort.Slice(features, func(i, j int) bool {
		if counts[features[i]] == counts[features[j]] {
			return features[i] < features[j]
		}
		return counts[features[i]] > counts[features[j]]
	})

	if len(features) > maxFeaturePreferences {
		features = features[:maxFeaturePreferences]
	}

	return features
}

// peakHours marks an hour as peak when its interaction count strictly
// exceeds the uniform-distribution baseline total/24.
func peakHours(interactions []domain.Interaction) []int {
	if len(interactions) == 0 {
		return nil
	}

	var counts [24]int
	for _, in := range interactions {
		counts[in.CreatedAt.Hour()]++
	}

	baseline := float64(len(interactions)) / 24.0

	var peaks []int
	for hour, count := range counts {
		if float64(count) > baseline {
			peaks = append(peaks, hour)
		}
	}

	return peaks
}

// conversionProbability = 0.6*clickRate + 0.4*engagement, capped at 0.95.
// 0.1 default for a user with no history.
func conversionProbability(interactions []domain.Interaction) float64 {
	if len(interactions) == 0 {
		return 0.1
	}

	clicks := 0
	for _, in := range interactions {
		if in.InteractionType == domain.InteractionClick {
			clicks++
		}
	}

	clickRate := float64(clicks) / float64(len(interactions))
	p := 0.6*clickRate + 0.4*engagementLevel(interactions)
	if p > 0.95 {
		p = 0.95
	}

	return p
}
