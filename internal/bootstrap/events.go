package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/playverse/PlayQuest_Go/internal/config"
	"github.com/playverse/PlayQuest_Go/internal/event"
	"github.com/playverse/PlayQuest_Go/internal/eventlog"
	"github.com/playverse/PlayQuest_Go/internal/metrics"
)

// InitializeEventSystem creates the in-memory event bus and wraps it in a
// resilient publisher with retry and dead-letter handling. The dead-letter
// directory is created up front so the first failed event does not also have
// to create it.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := cfg.DeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	resilientPublisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     EventDefaultMaxRetries,
		RetryDelay:     EventDefaultRetryDelay,
		DeadLetterPath: deadLetterPath,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}

// RegisterEventHandlers subscribes the cross-cutting event consumers.
func RegisterEventHandlers(eventBus event.Bus, audit eventlog.Service) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(eventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if err := audit.Subscribe(eventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterAudit, err)
	}
	slog.Info(LogMsgAuditTrailRegistered)

	return nil
}
