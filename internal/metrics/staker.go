package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

const namespace = "yody_staker"

// Attempt outcomes.
const (
	OutcomeProduced = "produced"
	OutcomeNoKernel = "no_kernel"
	OutcomeCanceled = "canceled"
	OutcomeError    = "error"
)

var (
	stakerAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "staker",
		Name:      "attempts_total",
		Help:      "Count of block production attempts by outcome.",
	}, []string{"network", "outcome"})

	stakerAttemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "staker",
		Name:      "attempt_duration_seconds",
		Help:      "Duration of block production attempts, kernel search included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "outcome"})

	stakerSubmitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "staker",
		Name:      "submit_total",
		Help:      "Count of produced blocks submitted to the node.",
	}, []string{"network", "status"})

	stakerWeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "staker",
		Name:      "weight_satoshi",
		Help:      "Total value of outputs offered to the last kernel search.",
	}, []string{"network"})

	stakerTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "staker",
		Name:      "tip_height",
		Help:      "Height of the tip the last attempt built on.",
	}, []string{"network"})
)

// Staker tracks metrics for the staking loop.
type Staker struct {
	network model.Network
}

// NewStaker constructs a Staker collector.
func NewStaker(network model.Network) *Staker {
	if network == "" {
		network = "unknown"
	}
	return &Staker{network: network}
}

// ObserveAttempt records one production attempt.
func (m Staker) ObserveAttempt(outcome string, started time.Time) {
	stakerAttemptsTotal.WithLabelValues(string(m.network), outcome).Inc()
	stakerAttemptDuration.WithLabelValues(string(m.network), outcome).Observe(time.Since(started).Seconds())
}

// ObserveSubmit records a block submission.
func (m Staker) ObserveSubmit(err error) {
	stakerSubmitTotal.WithLabelValues(string(m.network), status(err)).Inc()
}

// SetWeight records the stake offered to the search.
func (m Staker) SetWeight(weight int64) {
	stakerWeight.WithLabelValues(string(m.network)).Set(float64(weight))
}

// SetTipHeight records the tip of the current attempt.
func (m Staker) SetTipHeight(height uint64) {
	stakerTipHeight.WithLabelValues(string(m.network)).Set(float64(height))
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
