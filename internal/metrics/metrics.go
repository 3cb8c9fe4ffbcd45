package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Progression Metrics
var (
	XPCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPCalculations,
			Help: HelpTextXPCalculations,
		},
		[]string{LabelGame},
	)

	XPAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
		[]string{LabelGame},
	)

	XPRulesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPRulesSkipped,
			Help: HelpTextXPRulesSkipped,
		},
		[]string{LabelRuleType, LabelReason},
	)

	QuestEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestEvaluations,
			Help: HelpTextQuestEvaluations,
		},
		[]string{LabelQuestType},
	)

	QuestCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestCompletions,
			Help: HelpTextQuestCompletions,
		},
		[]string{LabelQuestType},
	)

	QuestClaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestClaims,
			Help: HelpTextQuestClaims,
		},
	)

	QuestResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestResets,
			Help: HelpTextQuestResets,
		},
		[]string{LabelQuestType},
	)
)
