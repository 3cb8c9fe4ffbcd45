package eventlog

import (
	"context"
	"time"
)

// Entry is one persisted audit record.
type Entry struct {
	ID        int64          `json:"id"`
	EventType string         `json:"event_type"`
	UserID    *string        `json:"user_id,omitempty"`
	Payload   map[string]any `json:"payload"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Filter narrows audit queries. Nil fields match everything.
type Filter struct {
	UserID    *string
	EventType *string
	Since     *time.Time
	Until     *time.Time
	Limit     int
}

// Repository is the storage interface for the event audit trail.
type Repository interface {
	// Insert stores one event record.
	Insert(ctx context.Context, eventType string, userID *string, payload, metadata map[string]any) error

	// Query retrieves records matching the filter, newest first.
	Query(ctx context.Context, filter Filter) ([]Entry, error)

	// DeleteOlderThan removes records older than the given number of days
	// and reports how many were deleted.
	DeleteOlderThan(ctx context.Context, retentionDays int) (int64, error)
}
