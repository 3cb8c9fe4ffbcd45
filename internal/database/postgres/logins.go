package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/playverse/PlayQuest_Go/internal/repository"
)

type loginsRepository struct {
	db *pgxpool.Pool
}

// NewLoginsRepository creates a PostgreSQL login tracker.
func NewLoginsRepository(db *pgxpool.Pool) repository.Logins {
	return &loginsRepository{db: db}
}

// RecordLogin upserts the login row and maintains the consecutive-day
// streak: another login on the same UTC day keeps it, the next calendar day
// increments it, a longer gap resets it to 1. The previous row is locked
// first so concurrent logins cannot double-increment.
func (r *loginsRepository) RecordLogin(ctx context.Context, userID string, at time.Time) (int, time.Time, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to begin login transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var prevLoginAt time.Time
	hasPrev := true
	err = tx.QueryRow(ctx, `
		SELECT last_login_at
		FROM user_logins
		WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&prevLoginAt)
	if errors.Is(err, pgx.ErrNoRows) {
		hasPrev = false
	} else if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to read previous login: %w", err)
	}

	var streak int
	err = tx.QueryRow(ctx, `
		INSERT INTO user_logins (user_id, last_login_at, login_streak)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id) DO UPDATE
		SET login_streak = CASE
			    WHEN date_trunc('day', user_logins.last_login_at AT TIME ZONE 'UTC')
			         = date_trunc('day', EXCLUDED.last_login_at AT TIME ZONE 'UTC')
			    THEN user_logins.login_streak
			    WHEN date_trunc('day', user_logins.last_login_at AT TIME ZONE 'UTC') + INTERVAL '1 day'
			         = date_trunc('day', EXCLUDED.last_login_at AT TIME ZONE 'UTC')
			    THEN user_logins.login_streak + 1
			    ELSE 1
			END,
		    last_login_at = EXCLUDED.last_login_at,
		    updated_at = NOW()
		RETURNING login_streak
	`, userID, at).Scan(&streak)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to record login: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to commit login: %w", err)
	}

	if !hasPrev {
		return streak, time.Time{}, nil
	}
	return streak, prevLoginAt, nil
}
