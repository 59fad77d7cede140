package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the claim lifecycle.
type Metrics struct {
	Transitions     *prometheus.CounterVec
	Replays         *prometheus.CounterVec
	Rejections      *prometheus.CounterVec
	DeadLetters     *prometheus.CounterVec
	FailuresMarked  *prometheus.CounterVec
	ClaimsSwept     prometheus.Counter
	SweepsSkipped   prometheus.Counter
	GatewayDuration *prometheus.HistogramVec
}

// New creates and registers all claim lifecycle metrics.
func New() *Metrics {
	return &Metrics{
		Transitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dict_bridge_claim_transitions_total",
			Help: "Completed claim phase transitions by claim type and target state",
		}, []string{"claim_type", "state"}),
		Replays: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dict_bridge_claim_replays_total",
			Help: "Phase events skipped because the key already reached the target state",
		}, []string{"claim_type", "state"}),
		Rejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dict_bridge_directory_rejections_total",
			Help: "Gateway calls refused by the directory (soft failures, no retry)",
		}, []string{"claim_type", "op"}),
		DeadLetters: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dict_bridge_claim_dead_letters_total",
			Help: "Phase events re-dispatched to a dead-letter channel after a transport failure",
		}, []string{"claim_type", "state"}),
		FailuresMarked: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dict_bridge_claim_failures_marked_total",
			Help: "Keys moved to a terminal FAILED state by the dead-letter service",
		}, []string{"claim_type", "state"}),
		ClaimsSwept: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dict_bridge_claims_swept_total",
			Help: "Pending claims force-expired by the sweeper",
		}),
		SweepsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dict_bridge_sweeps_skipped_total",
			Help: "Sweep ticks skipped because another instance held the leader lock",
		}),
		GatewayDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dict_bridge_directory_call_seconds",
			Help:    "Directory gateway call latency by operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}
}
