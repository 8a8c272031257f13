package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus metrics.
type Metrics struct {
	// Transaction metrics
	TransactionsCommitted *prometheus.CounterVec
	TransactionsRejected  *prometheus.CounterVec
	TransactionDuration   prometheus.Histogram

	// Statement metrics
	StatementsServed prometheus.Counter

	// Registry metrics
	RegistryClients prometheus.Gauge
}

// New creates and registers all metrics with the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates and registers all metrics with the given registerer.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TransactionsCommitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_transactions_committed_total",
				Help: "Total number of committed transactions",
			},
			[]string{"kind"},
		),
		TransactionsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_transactions_rejected_total",
				Help: "Total number of rejected transactions",
			},
			[]string{"reason"},
		),
		TransactionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "minibank_transaction_duration_seconds",
			Help:    "Duration of transaction applications",
			Buckets: prometheus.DefBuckets,
		}),
		StatementsServed: factory.NewCounter(prometheus.CounterOpts{
			Name: "minibank_statements_served_total",
			Help: "Total number of statements served",
		}),
		RegistryClients: factory.NewGauge(prometheus.GaugeOpts{
			Name: "minibank_registry_clients",
			Help: "Number of provisioned clients in the registry",
		}),
	}
}

// Rejection reasons for TransactionsRejected.
const (
	ReasonNotFound   = "not_found"
	ReasonValidation = "validation"
	ReasonLimit      = "limit_exceeded"
	ReasonTransient  = "transient"
	ReasonInternal   = "internal"
)
