package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	TransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_total",
			Help: "Transactions recorded, by type.",
		},
		[]string{"type"},
	)

	AccountsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "accounts_created_total",
			Help: "Accounts created.",
		},
	)

	BalanceUpdatesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "balance_updates_dropped_total",
			Help: "Balance updates not delivered because a socket buffer was full.",
		},
	)

	ChatbotQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_queries_total",
			Help: "Chatbot queries, by outcome.",
		},
		[]string{"outcome"},
	)
)

// Handler serves the default registry for /metrics.
var Handler = promhttp.Handler
