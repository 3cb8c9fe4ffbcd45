package bootstrap

import (
	"context"
	"log/slog"

	"github.com/playverse/PlayQuest_Go/internal/scheduler"
	"github.com/playverse/PlayQuest_Go/internal/server"
	"github.com/playverse/PlayQuest_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
}

// GracefulShutdown stops the application components in dependency order:
// the HTTP server first so no new work arrives, then the scheduler so no new
// jobs are queued, then the worker pool once queued jobs have drained.
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
