package recommend

import (
	"fmt"
	"strings"

	"africahub/domain"
)

// Fixed combination weights for the four sub-scores.
const (
	weightSemantic   = 0.3
	weightBehavioral = 0.25
	weightContextual = 0.25
	weightTrend      = 0.2
)

const (
	confidenceBase            = 0.5
	confidenceBonus           = 0.2
	confidenceCap             = 0.95
	engagementConfidenceFloor = 0.6
	conversionConfidenceFloor = 0.5
)

// Scorer computes an AdvancedScore per candidate product.
type Scorer struct {
	trend TrendScorer
}

func NewScorer(trend TrendScorer) *Scorer {
	if trend == nil {
		trend = RandomTrendScorer{}
	}
	return &Scorer{trend: trend}
}

// ScoreProduct computes the four sub-scores independently, combines them
// with the fixed weights and attaches confidence plus a reasoning string.
// The overall score is always in [0, 1], confidence in [0, 0.95].
func (s *Scorer) ScoreProduct(
	product domain.Product,
	behavior BehavioralProfile,
	factors ContextualFactors,
) domain.ScoredProduct {

	breakdown := domain.ScoreBreakdown{
		SemanticSimilarity:  semanticSimilarity(product, behavior),
		BehavioralMatch:     behavioralMatch(product, behavior),
		ContextualRelevance: contextualRelevance(product, factors),
		MarketTrend:         clamp01(s.trend.Score(product)),
	}

	overall := clamp01(
		weightSemantic*breakdown.SemanticSimilarity +
			weightBehavioral*breakdown.BehavioralMatch +
			weightContextual*breakdown.ContextualRelevance +
			weightTrend*breakdown.MarketTrend,
	)

	return domain.ScoredProduct{
		Product: product,
		Score: domain.AdvancedScore{
			OverallScore:    overall,
			ConfidenceLevel: confidenceLevel(behavior),
			Breakdown:       breakdown,
		},
		Reasoning: buildReasoning(product, behavior, factors, breakdown),
	}
}

// semanticSimilarity seeds at 0.5 and grows with the share of the user's
// preferred features the product carries.
func semanticSimilarity(product domain.Product, behavior BehavioralProfile) float64 {
	score := 0.5

	if len(behavior.FeaturePreferences) > 0 {
		matched := 0
		for _, pref := range behavior.FeaturePreferences {
			if hasFeature(product, pref) {
				matched++
			}
		}
		score += 0.5 * float64(matched) / float64(len(behavior.FeaturePreferences))
	}

	return clamp01(score)
}

// behavioralMatch rewards price alignment with the user's sensitivity band
// and adds an engagement term.
func behavioralMatch(product domain.Product, behavior BehavioralProfile) float64 {
	score := 0.5

	switch {
	case behavior.PriceSensitivity >= 0.8 && product.Price < budgetPriceBound:
		score += 0.25
	case behavior.PriceSensitivity <= 0.2 && product.Price > premiumPriceBound:
		score += 0.25
	case behavior.PriceSensitivity == 0.5 &&
		product.Price >= budgetPriceBound && product.Price <= premiumPriceBound:
		score += 0.1
	}

	score += 0.2 * behavior.EngagementLevel

	return clamp01(score)
}

// contextualRelevance rewards local-market fit, budget-band fit and
// availability in the user's country.
func contextualRelevance(product domain.Product, factors ContextualFactors) float64 {
	score := 0.5

	for _, pref := range factors.LocalPreferences {
		if hasFeature(product, pref) {
			score += 0.2
			break
		}
	}

	switch factors.BudgetCategory {
	case "low":
		if product.Price < budgetPriceBound {
			score += 0.2
		}
	case "high":
		if product.Price > premiumPriceBound {
			score += 0.2
		}
	default:
		if product.Price >= budgetPriceBound && product.Price <= premiumPriceBound {
			score += 0.2
		}
	}

	if product.AvailableIn(factors.Country) {
		score += 0.1
	}

	return clamp01(score)
}

// confidenceLevel adds fixed bonuses for strong engagement and conversion
// signals on top of a neutral base.
func confidenceLevel(behavior BehavioralProfile) float64 {
	confidence := confidenceBase
	if behavior.EngagementLevel > engagementConfidenceFloor {
		confidence += confidenceBonus
	}
	if behavior.ConversionProbability > conversionConfidenceFloor {
		confidence += confidenceBonus
	}
	if confidence > confidenceCap {
		confidence = confidenceCap
	}

	return confidence
}

func buildReasoning(
	product domain.Product,
	behavior BehavioralProfile,
	factors ContextualFactors,
	breakdown domain.ScoreBreakdown,
) string {
	var reasons []string

	if breakdown.SemanticSimilarity > 0.6 {
		reasons = append(reasons, "matches your preferred features")
	}
	if behavior.EngagementLevel > engagementConfidenceFloor {
		reasons = append(reasons, "aligned with products you spend time on")
	}
	if breakdown.ContextualRelevance > 0.6 {
		reasons = append(reasons, fmt.Sprintf("popular choice in %s", factors.Country))
	}
	if breakdown.MarketTrend > 0.7 {
		reasons = append(reasons, "trending in the market")
	}

	if len(reasons) == 0 {
		return fmt.Sprintf("%s is a solid option for your profile", product.Name)
	}

	return fmt.Sprintf("%s: %s", product.Name, strings.Join(reasons, ", "))
}

func hasFeature(product domain.Product, feature string) bool {
	for _, f := range product.Features {
		if f == feature {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
