package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the stream-start HTTP handler (includes the initial cycle)
	RecommendStreamLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_stream_latency_seconds",
		Help:    "Latency of the recommendation stream handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of stream-start requests served
	RecommendStreamRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_stream_requests_total",
		Help: "Total number of recommendation stream requests",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendStreamLatency,
		RecommendStreamRequests,
	)
}
