package eventlog

// DefaultRetentionDays is how long audit records are kept when the cleanup
// job is scheduled without an explicit retention.
const DefaultRetentionDays = 30

const payloadKeyUserID = "user_id"

// Log messages
const (
	LogMsgEventNotSerializable = "Event payload is not serializable, skipping audit record"
	LogMsgFailedToLogEvent     = "Failed to write audit record"
	LogMsgEventLogged          = "Audit record written"
	LogMsgCleanupJobStarting   = "Starting event log cleanup job"
	LogMsgCleanupJobFailed     = "Event log cleanup failed"
	LogMsgCleanupJobCompleted  = "Event log cleanup completed"
)
