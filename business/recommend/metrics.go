package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CyclesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_cycles_total",
			Help: "Count of recommendation cycles by kind (initial or periodic).",
		},
		[]string{"kind"},
	)

	CycleDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_cycle_duration_seconds",
			Help:    "Duration of one fetch-score-publish cycle.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(CyclesTotal, CycleDuration)
}
