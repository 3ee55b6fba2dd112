package recommend

import (
	"math/rand"

	"africahub/domain"
)

// TrendScorer supplies the market-trend component of a score.
type TrendScorer interface {
	Score(product domain.Product) float64
}

// RandomTrendScorer emits unseeded noise in [0.5, 0.9). The randomness is
// deliberate exploration; swap in a real trend signal here once one exists.
type RandomTrendScorer struct{}

func (RandomTrendScorer) Score(domain.Product) float64 {
	return 0.5 + rand.Float64()*0.4
}

// FixedTrendScorer returns a constant trend score. Used wherever
// reproducible ranking matters.
type FixedTrendScorer struct {
	Value float64
}

func (s FixedTrendScorer) Score(domain.Product) float64 {
	return s.Value
}
