package assistant

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	inferenceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "qbit_inference_duration_seconds",
		Help:    "Latency of calls to the inference endpoint.",
		Buckets: prometheus.DefBuckets,
	})
	inferenceFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qbit_inference_fallbacks_total",
		Help: "Inference failures recovered by a deterministic fallback.",
	}, []string{"kind"})
)
