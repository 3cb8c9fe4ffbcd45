package repository

import (
	"context"
	"time"

	"github.com/playverse/PlayQuest_Go/internal/domain"
)

// SessionHistory reads session aggregates for quest progress recomputation.
// A nil since means all-time; an empty gameID means all games. Read-only
// except for RecordSession, which the session flow calls once per finished
// session before quests are evaluated.
type SessionHistory interface {
	RecordSession(ctx context.Context, userID string, session *domain.SessionContext, xpAwarded float64, endedAt time.Time) error

	CountSessions(ctx context.Context, userID string, since *time.Time, gameID string) (int, error)
	SumDuration(ctx context.Context, userID string, since *time.Time, gameID string) (int, error)
	SumXP(ctx context.Context, userID string, since *time.Time) (float64, error)
	TotalXP(ctx context.Context, userID string) (float64, error)

	// MaxSessionsPerGame returns the largest per-game session count across
	// all games the user played.
	MaxSessionsPerGame(ctx context.Context, userID string, since *time.Time) (int, error)

	CountSessionsWithMinScore(ctx context.Context, userID, gameID string, minScore int, since *time.Time) (int, error)
}
