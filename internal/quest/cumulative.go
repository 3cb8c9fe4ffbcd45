package quest

import (
	"github.com/playverse/PlayQuest_Go/internal/domain"
)

// Game-specific cumulative extensions. Every qualifying session updates all
// counters for that game in one pass; each quest then reads the single
// metric it cares about. Win streaks reset to zero on a loss but the running
// best never decreases within a window, and completion gates on the best.

// Session extra-stat keys the games report.
const (
	extraKeyWon           = "won"
	extraKeySevensRolled  = "sevens_rolled"
	extraKeyYatzisRolled  = "yatzis_rolled"
	extraKeyFullHouses    = "full_houses"
	extraKeyBlocksCleared = "blocks_cleared"
)

// updateCumulative folds one finished session into the game's counter set.
func updateCumulative(state *domain.CumulativeState, s *domain.SessionContext) {
	switch {
	case state.Seven != nil:
		c := state.Seven
		c.SevensRolled += s.ExtraInt(extraKeySevensRolled)
		c.GamesWon, c.WinStreak, c.BestWinStreak = applyWin(c.GamesWon, c.WinStreak, c.BestWinStreak, s.ExtraBool(extraKeyWon))
		c.HighScore = maxInt(c.HighScore, s.Score)

	case state.Yatzi != nil:
		c := state.Yatzi
		c.YatzisRolled += s.ExtraInt(extraKeyYatzisRolled)
		c.FullHouses += s.ExtraInt(extraKeyFullHouses)
		c.GamesWon, c.WinStreak, c.BestWinStreak = applyWin(c.GamesWon, c.WinStreak, c.BestWinStreak, s.ExtraBool(extraKeyWon))
		c.HighScore = maxInt(c.HighScore, s.Score)

	case state.Runner != nil:
		c := state.Runner
		c.TotalDistance += s.Distance
		if s.Distance > c.BestDistance {
			c.BestDistance = s.Distance
		}
		c.GamesWon, c.WinStreak, c.BestWinStreak = applyWin(c.GamesWon, c.WinStreak, c.BestWinStreak, s.ExtraBool(extraKeyWon))

	case state.Blast != nil:
		c := state.Blast
		c.LevelsCompleted += s.LevelsCompleted
		c.BlocksCleared += s.ExtraInt(extraKeyBlocksCleared)
		c.GamesWon, c.WinStreak, c.BestWinStreak = applyWin(c.GamesWon, c.WinStreak, c.BestWinStreak, s.ExtraBool(extraKeyWon))
		c.HighScore = maxInt(c.HighScore, s.Score)
	}
}

// metricValue reads the configured metric from the counter set. Unknown
// metrics and empty states read as zero.
func metricValue(state *domain.CumulativeState, metric string) int {
	if state == nil {
		return 0
	}

	switch {
	case state.Seven != nil:
		c := state.Seven
		switch metric {
		case domain.MetricRollSeven:
			return c.SevensRolled
		case domain.MetricGamesWon:
			return c.GamesWon
		case domain.MetricWinStreak:
			return c.BestWinStreak
		case domain.MetricHighScore:
			return c.HighScore
		}

	case state.Yatzi != nil:
		c := state.Yatzi
		switch metric {
		case domain.MetricRollYatzi:
			return c.YatzisRolled
		case domain.MetricFullHouse:
			return c.FullHouses
		case domain.MetricGamesWon:
			return c.GamesWon
		case domain.MetricWinStreak:
			return c.BestWinStreak
		case domain.MetricHighScore:
			return c.HighScore
		}

	case state.Runner != nil:
		c := state.Runner
		switch metric {
		case domain.MetricTotalDistance:
			return int(c.TotalDistance)
		case domain.MetricBestDistance:
			return int(c.BestDistance)
		case domain.MetricGamesWon:
			return c.GamesWon
		case domain.MetricWinStreak:
			return c.BestWinStreak
		}

	case state.Blast != nil:
		c := state.Blast
		switch metric {
		case domain.MetricLevelsCompleted:
			return c.LevelsCompleted
		case domain.MetricBlocksCleared:
			return c.BlocksCleared
		case domain.MetricGamesWon:
			return c.GamesWon
		case domain.MetricWinStreak:
			return c.BestWinStreak
		case domain.MetricHighScore:
			return c.HighScore
		}
	}

	return 0
}

func applyWin(gamesWon, streak, best int, won bool) (int, int, int) {
	if won {
		gamesWon++
		streak++
		if streak > best {
			best = streak
		}
	} else {
		streak = 0
	}
	return gamesWon, streak, best
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
