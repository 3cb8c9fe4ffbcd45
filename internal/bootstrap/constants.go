package bootstrap

import "time"

// Directory permission for runtime-created directories (logs, dead-letter)
const DirPermission = 0755

// Event system defaults, used when the corresponding config values are unset
const (
	EventDefaultMaxRetries = 5

	EventDefaultRetryDelay = 2 * time.Second

	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for the bootstrap sequence
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir  = "failed to create dead-letter directory"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgAuditTrailRegistered       = "Event audit trail registered"
	LogMsgShuttingDownServer         = "Shutting down server"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgServerStopped              = "Server stopped"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedRegisterAudit        = "failed to register event audit trail"
)
