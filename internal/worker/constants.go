package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the rank recompute job
const (
	LogMsgRankRecomputeStarting  = "Rank recompute starting"
	LogMsgRankRecomputeCompleted = "Rank recompute completed"
	LogMsgRankRecomputeFailed    = "Rank recompute failed"
)
