package repository

import "context"

// RankLookup reads the weekly leaderboard maintained by the external ranking
// job. Used by leaderboard_top quests and the rank recompute worker.
type RankLookup interface {
	// WeeklyRank returns (rank, true) when the user is ranked for the ISO
	// week, (0, false) when not.
	WeeklyRank(ctx context.Context, userID string, year, week int) (int, bool, error)

	// UsersRanked lists every user holding a rank for the ISO week.
	UsersRanked(ctx context.Context, year, week int) ([]string, error)
}
