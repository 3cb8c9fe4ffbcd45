package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/playverse/PlayQuest_Go/internal/domain"
	"github.com/playverse/PlayQuest_Go/internal/repository"
)

type questProgressRepository struct {
	db *pgxpool.Pool
}

// NewQuestProgressRepository creates a PostgreSQL quest progress store.
func NewQuestProgressRepository(db *pgxpool.Pool) repository.QuestProgress {
	return &questProgressRepository{db: db}
}

const questProgressColumns = `user_id, quest_id, current_progress, is_completed, completed_at, is_claimed, claimed_at, started_at, extra, version`

func (r *questProgressRepository) Get(ctx context.Context, userID string, questID int) (*domain.UserQuestProgress, error) {
	query := `
		SELECT ` + questProgressColumns + `
		FROM user_quest_progress
		WHERE user_id = $1 AND quest_id = $2
	`

	rec, err := scanQuestProgress(r.db.QueryRow(ctx, query, userID, questID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quest progress: %w", err)
	}
	return rec, nil
}

// Upsert inserts a fresh record (Version 0) or updates an existing one with
// an optimistic version check. A lost race surfaces as
// domain.ErrConcurrentModification; the caller re-reads and retries.
func (r *questProgressRepository) Upsert(ctx context.Context, p *domain.UserQuestProgress) error {
	extraJSON, err := json.Marshal(p.Extra)
	if err != nil {
		return fmt.Errorf("failed to marshal progress extra: %w", err)
	}

	if p.Version == 0 {
		query := `
			INSERT INTO user_quest_progress
				(user_id, quest_id, current_progress, is_completed, completed_at, is_claimed, claimed_at, started_at, extra, version)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1)
			ON CONFLICT (user_id, quest_id) DO NOTHING
		`
		tag, err := r.db.Exec(ctx, query,
			p.UserID, p.QuestID, p.CurrentProgress, p.IsCompleted, p.CompletedAt,
			p.IsClaimed, p.ClaimedAt, p.StartedAt, extraJSON)
		if err != nil {
			return fmt.Errorf("failed to insert quest progress: %w", err)
		}
		if tag.RowsAffected() == 0 {
			// Another evaluation created the row first.
			return domain.ErrConcurrentModification
		}
		p.Version = 1
		return nil
	}

	query := `
		UPDATE user_quest_progress
		SET current_progress = $3,
		    is_completed = $4,
		    completed_at = $5,
		    is_claimed = $6,
		    claimed_at = $7,
		    extra = $8,
		    version = version + 1,
		    updated_at = NOW()
		WHERE user_id = $1 AND quest_id = $2 AND version = $9
	`
	tag, err := r.db.Exec(ctx, query,
		p.UserID, p.QuestID, p.CurrentProgress, p.IsCompleted, p.CompletedAt,
		p.IsClaimed, p.ClaimedAt, extraJSON, p.Version)
	if err != nil {
		return fmt.Errorf("failed to update quest progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentModification
	}
	p.Version++
	return nil
}

func (r *questProgressRepository) ListByUser(ctx context.Context, userID string) ([]domain.UserQuestProgress, error) {
	query := `
		SELECT ` + questProgressColumns + `
		FROM user_quest_progress
		WHERE user_id = $1
		ORDER BY quest_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quest progress: %w", err)
	}
	defer rows.Close()

	var records []domain.UserQuestProgress
	for rows.Next() {
		rec, err := scanQuestProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quest progress: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *questProgressRepository) CountCompleted(ctx context.Context, userID string, excludeQuestID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM user_quest_progress
		WHERE user_id = $1 AND quest_id <> $2 AND is_completed
	`

	var n int
	if err := r.db.QueryRow(ctx, query, userID, excludeQuestID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count completed quests: %w", err)
	}
	return n, nil
}

func scanQuestProgress(row pgx.Row) (*domain.UserQuestProgress, error) {
	var rec domain.UserQuestProgress
	var extraJSON []byte

	err := row.Scan(
		&rec.UserID, &rec.QuestID, &rec.CurrentProgress,
		&rec.IsCompleted, &rec.CompletedAt,
		&rec.IsClaimed, &rec.ClaimedAt,
		&rec.StartedAt, &extraJSON, &rec.Version)
	if err != nil {
		return nil, err
	}

	if len(extraJSON) > 0 {
		if err := json.Unmarshal(extraJSON, &rec.Extra); err != nil {
			return nil, fmt.Errorf("failed to unmarshal progress extra: %w", err)
		}
	}
	return &rec, nil
}
