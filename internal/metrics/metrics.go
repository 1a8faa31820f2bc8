// Package metrics exposes the engine's prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalculationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "energyfront_calculations_total",
			Help: "Total number of successful bill calculations",
		},
	)

	CalculationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "energyfront_calculation_errors_total",
			Help: "Records dropped during ranking, by reason",
		},
		[]string{"reason"},
	)

	IneligibleRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "energyfront_ineligible_records_total",
			Help: "Records excluded by the eligibility filter during ranking",
		},
	)

	RankRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "energyfront_rank_requests_total",
			Help: "Ranking requests served by the API",
		},
	)

	RankDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "energyfront_rank_duration_seconds",
			Help:    "Wall time per ranking request",
			Buckets: prometheus.DefBuckets,
		},
	)
)
