package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Progression metric names
const (
	MetricNameXPCalculations   = "xp_calculations_total"
	MetricNameXPAwarded        = "xp_awarded_total"
	MetricNameXPRulesSkipped   = "xp_rules_skipped_total"
	MetricNameQuestEvaluations = "quest_evaluations_total"
	MetricNameQuestCompletions = "quest_completions_total"
	MetricNameQuestClaims      = "quest_claims_total"
	MetricNameQuestResets      = "quest_resets_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Progression metric help text
const (
	HelpTextXPCalculations   = "Total number of XP calculations performed"
	HelpTextXPAwarded        = "Total XP awarded across sessions"
	HelpTextXPRulesSkipped   = "Total number of XP rules skipped during calculation"
	HelpTextQuestEvaluations = "Total number of quest progress evaluations"
	HelpTextQuestCompletions = "Total number of quests newly completed"
	HelpTextQuestClaims      = "Total number of quest rewards claimed"
	HelpTextQuestResets      = "Total number of quest window resets applied"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelGame      = "game"
	LabelRuleType  = "rule_type"
	LabelReason    = "reason"
	LabelQuestType = "quest_type"
)

// HTTPLatencyBuckets covers the expected latency range of the API.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
