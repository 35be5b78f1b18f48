package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gasSelectionEntries = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gas_selection",
		Name:      "entries",
		Help:      "Mempool entries per selection partition.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"partition"})

	gasSelectionGasUsed = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gas_selection",
		Name:      "gas_used",
		Help:      "Gas committed by a template selection.",
		Buckets:   prometheus.ExponentialBuckets(10_000, 4, 10),
	})

	gasSelectionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gas_selection",
		Name:      "duration_seconds",
		Help:      "Duration of template selection.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
	})
)

// GasSelection tracks template selection outcomes.
type GasSelection struct{}

// NewGasSelection constructs a GasSelection collector.
func NewGasSelection() *GasSelection {
	return &GasSelection{}
}

// ObserveSelection records the partition sizes of one selection.
func (m GasSelection) ObserveSelection(selected, deferred, rejected int, gasUsed uint64, started time.Time) {
	gasSelectionEntries.WithLabelValues("selected").Observe(float64(selected))
	gasSelectionEntries.WithLabelValues("deferred").Observe(float64(deferred))
	gasSelectionEntries.WithLabelValues("rejected").Observe(float64(rejected))
	gasSelectionGasUsed.Observe(float64(gasUsed))
	gasSelectionDuration.Observe(time.Since(started).Seconds())
}
