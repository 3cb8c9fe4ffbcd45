package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/playverse/PlayQuest_Go/internal/repository"
)

type rankLookupRepository struct {
	db *pgxpool.Pool
}

// NewRankLookupRepository creates a PostgreSQL weekly rank reader.
func NewRankLookupRepository(db *pgxpool.Pool) repository.RankLookup {
	return &rankLookupRepository{db: db}
}

func (r *rankLookupRepository) WeeklyRank(ctx context.Context, userID string, year, week int) (int, bool, error) {
	query := `
		SELECT rank
		FROM weekly_ranks
		WHERE user_id = $1 AND iso_year = $2 AND iso_week = $3
	`

	var rank int
	err := r.db.QueryRow(ctx, query, userID, year, week).Scan(&rank)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up weekly rank: %w", err)
	}
	return rank, true, nil
}

func (r *rankLookupRepository) UsersRanked(ctx context.Context, year, week int) ([]string, error) {
	query := `
		SELECT user_id
		FROM weekly_ranks
		WHERE iso_year = $1 AND iso_week = $2
		ORDER BY rank
	`

	rows, err := r.db.Query(ctx, query, year, week)
	if err != nil {
		return nil, fmt.Errorf("failed to list ranked users: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan ranked user: %w", err)
		}
		users = append(users, userID)
	}
	return users, rows.Err()
}
