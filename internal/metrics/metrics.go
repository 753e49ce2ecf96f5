package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stub faucet counters, partitioned by chain.

var (
	ClaimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "faucet",
		Subsystem: "claims",
		Name:      "total",
		Help:      "Faucet claims by outcome (sent, cooldown, rejected, error)",
	}, []string{"chain", "result"})

	ClaimLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "faucet",
		Subsystem: "claims",
		Name:      "duration_seconds",
		Help:      "Time spent answering a claim, artificial delay included",
		Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60},
	}, []string{"chain"})

	CooldownStoreErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "faucet",
		Subsystem: "cooldown",
		Name:      "store_errors_total",
		Help:      "Cooldown store failures",
	})
)

// Claim results
const (
	ResultSent     = "sent"
	ResultCooldown = "cooldown"
	ResultRejected = "rejected"
	ResultError    = "error"
)
