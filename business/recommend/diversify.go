package recommend

import (
	"sort"

	"africahub/domain"
)

// brandless products share a single diversification bucket
const defaultBrandBucket = "default"

// DiversifyByBrand keeps only the highest-scoring product per brand. This is
// a best-of-group reduction, not a coverage algorithm. Output is sorted by
// descending overall score, ties broken by product id.
func DiversifyByBrand(scored []domain.ScoredProduct) []domain.ScoredProduct {
	best := make(map[string]domain.ScoredProduct)

	for _, sp := range scored {
		brand := sp.Product.Brand
		if brand == "" {
			brand = defaultBrandBucket
		}

		current, ok := best[brand]
		if !ok || sp.Score.OverallScore > current.Score.OverallScore {
			best[brand] = sp
		}
	}

	out := make([]domain.ScoredProduct, 0, len(best))
	for _, sp := range best {
		out = append(out, sp)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score.OverallScore == out[j].Score.OverallScore {
			return out[i].Product.ID < out[j].Product.ID
		}
		return out[i].Score.OverallScore > out[j].Score.OverallScore
	})

	return out
}

// FilterByCountry drops products not available in the user's country,
// regardless of score. No other exclusion rule applies here.
func FilterByCountry(scored []domain.ScoredProduct, country string) []domain.ScoredProduct {
	out := make([]domain.ScoredProduct, 0, len(scored))
	for _, sp := range scored {
		if sp.Product.AvailableIn(country) {
			out = append(out, sp)
		}
	}

	return out
}
