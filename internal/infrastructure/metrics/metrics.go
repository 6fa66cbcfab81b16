package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	DepositsCreated    prometheus.Counter
	WithdrawalsCreated prometheus.Counter
	TransfersCreated   prometheus.Counter
	OperationErrors    *prometheus.CounterVec
	OperationAmount    *prometheus.HistogramVec

	// Rate limiting metrics
	RateLimitDenials *prometheus.CounterVec

	// Identity metrics
	ActorsRegistered prometheus.Counter
	AuthFailures     prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		DepositsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wallet_deposits_total",
			Help: "Total number of deposits committed",
		}),
		WithdrawalsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wallet_withdrawals_total",
			Help: "Total number of withdrawals committed",
		}),
		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wallet_transfers_total",
			Help: "Total number of transfer pairs committed",
		}),
		OperationErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_operation_errors_total",
			Help: "Failed ledger operations by operation and error",
		}, []string{"operation", "error"}),
		OperationAmount: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wallet_operation_amount",
			Help:    "Amounts of committed ledger operations",
			Buckets: prometheus.ExponentialBuckets(1, 10, 6),
		}, []string{"operation"}),
		RateLimitDenials: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_rate_limit_denials_total",
			Help: "Operations denied by the fraud-prevention limiter, by rule",
		}, []string{"rule"}),
		ActorsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wallet_actors_registered_total",
			Help: "Total number of registered actors",
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wallet_auth_failures_total",
			Help: "Total number of failed authentication attempts",
		}),
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_http_requests_total",
			Help: "HTTP requests by method, path and status",
		}, []string{"method", "path", "status"}),
		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wallet_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}
