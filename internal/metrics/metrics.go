package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the gate pass lifecycle, exposed on /metrics.
var (
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gatepass_login_attempts_total",
		Help: "Login attempts by result.",
	}, []string{"result"})

	RequestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gatepass_requests_created_total",
		Help: "Gate pass requests created.",
	})

	RequestsReviewed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gatepass_requests_reviewed_total",
		Help: "Gate pass requests reviewed, by outcome.",
	}, []string{"status"})

	PassesUsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gatepass_passes_used_total",
		Help: "Approved passes consumed at the gate.",
	})
)
