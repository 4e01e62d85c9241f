package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	planRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripmitra_plan_requests_total",
			Help: "Plan requests by outcome (plan, follow_up).",
		},
		[]string{"outcome"},
	)

	planCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripmitra_plan_cache_hits_total",
			Help: "Plan requests served from the Redis cache.",
		},
	)

	aiAugmentationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripmitra_ai_augmentations_total",
			Help: "AI itinerary augmentation attempts by outcome (success, fallback).",
		},
		[]string{"outcome"},
	)
)
