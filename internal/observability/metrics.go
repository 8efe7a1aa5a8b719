package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FilterDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matchfilter_decisions_total",
		Help: "The total number of filter decisions by verdict",
	}, []string{"verdict"})

	ConversationsAnalyzed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchfilter_conversations_analyzed_total",
		Help: "The total number of conversations run through the analysis report",
	})

	ScoringDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "matchfilter_scoring_duration_seconds",
		Help:    "Duration of single-conversation scoring",
		Buckets: prometheus.DefBuckets,
	})

	BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "matchfilter_batch_conversations",
		Help:    "Number of conversations per batch filter call",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 250},
	})

	BatchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchfilter_batch_failures_total",
		Help: "The total number of per-conversation failures inside batch filtering",
	})

	ConfigReplacements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matchfilter_config_replacements_total",
		Help: "The total number of filter configuration replace attempts by status",
	}, []string{"status"})
)
