package metrics

import "github.com/prometheus/client_golang/prometheus"

// Conversion path labels.
const (
	PathSingle     = "single"
	PathSequential = "sequential"
	PathParallel   = "parallel"
	PathInverse    = "inverse"
)

var (
	// PointsConverted counts converted coordinates by execution path.
	PointsConverted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bnggrid",
			Name:      "points_converted_total",
			Help:      "Coordinates converted, by execution path",
		},
		[]string{"path"},
	)

	// BatchSize observes the size distribution of batch requests.
	BatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "bnggrid",
			Name:      "batch_size",
			Help:      "Number of coordinates per batch request",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		},
	)

	// ConvertDuration observes batch conversion wall time by path.
	ConvertDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bnggrid",
			Name:      "convert_duration_seconds",
			Help:      "Batch conversion duration in seconds",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"path"},
	)
)

// RegisterConvertMetrics registers conversion metrics explicitly (no init()).
func RegisterConvertMetrics() {
	prometheus.MustRegister(PointsConverted)
	prometheus.MustRegister(BatchSize)
	prometheus.MustRegister(ConvertDuration)
}
