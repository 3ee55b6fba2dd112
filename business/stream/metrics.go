package stream

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ActiveStreams = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_active_streams",
			Help: "Number of live recommendation streams.",
		},
	)

	StreamTicksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_stream_ticks_total",
			Help: "Count of periodic stream ticks executed.",
		},
	)

	StreamTickFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_stream_tick_failures_total",
			Help: "Count of periodic stream ticks that failed and were skipped.",
		},
	)
)

func init() {
	prometheus.MustRegister(ActiveStreams, StreamTicksTotal, StreamTickFailuresTotal)
}
