package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/playverse/PlayQuest_Go/internal/domain"
	"github.com/playverse/PlayQuest_Go/internal/repository"
)

type sessionHistoryRepository struct {
	db *pgxpool.Pool
}

// NewSessionHistoryRepository creates a PostgreSQL session history store.
func NewSessionHistoryRepository(db *pgxpool.Pool) repository.SessionHistory {
	return &sessionHistoryRepository{db: db}
}

func (r *sessionHistoryRepository) RecordSession(ctx context.Context, userID string, session *domain.SessionContext, xpAwarded float64, endedAt time.Time) error {
	query := `
		INSERT INTO game_sessions
			(user_id, game_id, score, duration_seconds, is_new_high_score, distance, levels_completed, extra, xp_awarded, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	var extraJSON []byte
	if len(session.Extra) > 0 {
		var err error
		extraJSON, err = json.Marshal(session.Extra)
		if err != nil {
			return fmt.Errorf("failed to marshal session extra: %w", err)
		}
	}

	_, err := r.db.Exec(ctx, query,
		userID, session.GameID, session.Score, session.DurationSeconds,
		session.IsNewHighScore, session.Distance, session.LevelsCompleted,
		extraJSON, xpAwarded, endedAt)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}

// historyFilter appends the shared since/game predicates and returns the
// completed query plus its args.
func historyFilter(base, userID string, since *time.Time, gameID string) (string, []interface{}) {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString(" WHERE user_id = $1")
	args := []interface{}{userID}

	if since != nil {
		fmt.Fprintf(&b, " AND ended_at >= $%d", len(args)+1)
		args = append(args, *since)
	}
	if gameID != "" {
		fmt.Fprintf(&b, " AND game_id = $%d", len(args)+1)
		args = append(args, gameID)
	}
	return b.String(), args
}

func (r *sessionHistoryRepository) CountSessions(ctx context.Context, userID string, since *time.Time, gameID string) (int, error) {
	query, args := historyFilter(`SELECT COUNT(*) FROM game_sessions`, userID, since, gameID)

	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}

func (r *sessionHistoryRepository) SumDuration(ctx context.Context, userID string, since *time.Time, gameID string) (int, error) {
	query, args := historyFilter(`SELECT COALESCE(SUM(duration_seconds), 0) FROM game_sessions`, userID, since, gameID)

	var sum int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum session duration: %w", err)
	}
	return sum, nil
}

func (r *sessionHistoryRepository) SumXP(ctx context.Context, userID string, since *time.Time) (float64, error) {
	query, args := historyFilter(`SELECT COALESCE(SUM(xp_awarded), 0) FROM game_sessions`, userID, since, "")

	var sum float64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum session XP: %w", err)
	}
	return sum, nil
}

func (r *sessionHistoryRepository) TotalXP(ctx context.Context, userID string) (float64, error) {
	return r.SumXP(ctx, userID, nil)
}

func (r *sessionHistoryRepository) MaxSessionsPerGame(ctx context.Context, userID string, since *time.Time) (int, error) {
	query, args := historyFilter(`SELECT COALESCE(MAX(n), 0) FROM (SELECT COUNT(*) AS n FROM game_sessions`, userID, since, "")
	query += ` GROUP BY game_id) per_game`

	var best int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&best); err != nil {
		return 0, fmt.Errorf("failed to compute per-game session max: %w", err)
	}
	return best, nil
}

func (r *sessionHistoryRepository) CountSessionsWithMinScore(ctx context.Context, userID, gameID string, minScore int, since *time.Time) (int, error) {
	query, args := historyFilter(`SELECT COUNT(*) FROM game_sessions`, userID, since, gameID)
	query += fmt.Sprintf(" AND score >= $%d", len(args)+1)
	args = append(args, minScore)

	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count qualifying sessions: %w", err)
	}
	return n, nil
}
