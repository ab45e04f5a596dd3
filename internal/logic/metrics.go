package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Enrichment sources and outcomes
const (
	sourceLiveStats = "live_stats"
	sourceSentiment = "sentiment"
	sourceWeather   = "weather"
	sourceVenue     = "venue"
	sourceTeamStats = "team_stats"

	outcomeApplied     = "applied"
	outcomeUnavailable = "unavailable"
	outcomeNotReady    = "not_ready"
	outcomeFailed      = "failed"
)

// Prometheus metrics
var (
	predictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cricket_predictions_total",
		Help: "Total number of predictions produced",
	}, []string{"format", "winner_side"})

	predictionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cricket_prediction_duration_seconds",
		Help:    "Duration of prediction runs including enrichment",
		Buckets: prometheus.DefBuckets,
	})

	enrichmentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cricket_enrichment_total",
		Help: "Outcomes of optional data enrichment steps",
	}, []string{"source", "outcome"})

	predictionsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricket_predictions_rejected_total",
		Help: "Total number of prediction requests rejected by validation",
	})
)
