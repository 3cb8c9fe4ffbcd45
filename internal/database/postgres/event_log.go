package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/playverse/PlayQuest_Go/internal/eventlog"
)

const defaultEventLogLimit = 50

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a PostgreSQL event audit store.
func NewEventLogRepository(db *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{db: db}
}

func (r *eventLogRepository) Insert(ctx context.Context, eventType string, userID *string, payload, metadata map[string]any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	var metadataJSON []byte
	if metadata != nil {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal event metadata: %w", err)
		}
	}

	query := `
		INSERT INTO event_log (event_type, user_id, payload, metadata)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.Exec(ctx, query, eventType, userID, payloadJSON, metadataJSON); err != nil {
		return fmt.Errorf("failed to insert event log entry: %w", err)
	}
	return nil
}

func (r *eventLogRepository) Query(ctx context.Context, filter eventlog.Filter) ([]eventlog.Entry, error) {
	var conditions []string
	var args []any

	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.UserID != nil {
		addCondition("user_id = $%d", *filter.UserID)
	}
	if filter.EventType != nil {
		addCondition("event_type = $%d", *filter.EventType)
	}
	if filter.Since != nil {
		addCondition("created_at >= $%d", *filter.Since)
	}
	if filter.Until != nil {
		addCondition("created_at < $%d", *filter.Until)
	}

	query := `SELECT entry_id, event_type, user_id, payload, metadata, created_at FROM event_log`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultEventLogLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query event log: %w", err)
	}
	defer rows.Close()

	var entries []eventlog.Entry
	for rows.Next() {
		var entry eventlog.Entry
		var payloadJSON, metadataJSON []byte

		if err := rows.Scan(&entry.ID, &entry.EventType, &entry.UserID, &payloadJSON, &metadataJSON, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event log entry: %w", err)
		}

		if len(payloadJSON) > 0 {
			if err := json.Unmarshal(payloadJSON, &entry.Payload); err != nil {
				return nil, fmt.Errorf("failed to unmarshal event payload: %w", err)
			}
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal event metadata: %w", err)
			}
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read event log rows: %w", err)
	}
	return entries, nil
}

func (r *eventLogRepository) DeleteOlderThan(ctx context.Context, retentionDays int) (int64, error) {
	query := `DELETE FROM event_log WHERE created_at < NOW() - make_interval(days => $1)`

	tag, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old event log entries: %w", err)
	}
	return tag.RowsAffected(), nil
}
