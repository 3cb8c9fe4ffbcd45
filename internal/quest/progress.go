package quest

import (
	"context"
	"time"

	"github.com/playverse/PlayQuest_Go/internal/domain"
)

// recompute derives the quest's fresh progress value from the event and the
// history collaborator. Cumulative quest types always overwrite the counter
// with a freshly aggregated value, never with a delta. The returned bool
// reports whether the record's extra blob was mutated.
func (t *Tracker) recompute(ctx context.Context, q domain.Quest, rec *domain.UserQuestProgress, ev domain.ProgressEvent) (int, bool, error) {
	since := windowStart(effectivePeriod(q), ev.OccurredAt)

	switch q.Type {
	case domain.QuestPlayGames, domain.QuestPlayGamesWeekly:
		n, err := t.history.CountSessions(ctx, rec.UserID, since, q.Config.GameID)
		return n, false, err

	case domain.QuestPlayTime, domain.QuestPlayTimeDaily:
		seconds, err := t.history.SumDuration(ctx, rec.UserID, since, q.Config.GameID)
		return seconds, false, err

	case domain.QuestPlayTimeCumulative:
		seconds, err := t.history.SumDuration(ctx, rec.UserID, nil, q.Config.GameID)
		return seconds, false, err

	case domain.QuestPlaySameGame:
		n, err := t.history.MaxSessionsPerGame(ctx, rec.UserID, since)
		return n, false, err

	case domain.QuestScoreThresholdPerGame:
		n, err := t.history.CountSessionsWithMinScore(ctx, rec.UserID, q.Config.GameID, q.Config.MinScore, since)
		return n, false, err

	case domain.QuestScoreEndsWith:
		return t.recomputeScoreEndsWith(q, rec, ev), false, nil

	case domain.QuestReachLevel:
		total, err := t.history.TotalXP(ctx, rec.UserID)
		if err != nil {
			return 0, false, err
		}
		return t.levels.LevelForXP(total), false, nil

	case domain.QuestXPDaily, domain.QuestXPWeekly:
		sum, err := t.history.SumXP(ctx, rec.UserID, since)
		if err != nil {
			return 0, false, err
		}
		return int(sum), false, nil

	case domain.QuestLoginStreak:
		if ev.Kind != domain.EventLogin {
			return rec.CurrentProgress, false, nil
		}
		return ev.LoginStreak, false, nil

	case domain.QuestLoginAfter24h:
		return t.recomputeLoginAfter24h(rec, ev)

	case domain.QuestLeaderboardTop:
		return t.recomputeLeaderboardTop(ctx, q, rec, ev)

	case domain.QuestCompleteQuests:
		// Excludes itself so the meta-quest cannot feed its own counter.
		n, err := t.store.CountCompleted(ctx, rec.UserID, q.QuestID)
		return n, false, err

	case domain.QuestGameSpecific:
		return t.recomputeGameSpecific(q, rec, ev)

	default:
		// An unrecognized type holds its progress rather than failing the
		// whole evaluation pass.
		return rec.CurrentProgress, false, nil
	}
}

// recomputeScoreEndsWith latches to 1 the first time any session's final
// digit matches; later non-matching sessions never unlatch it.
func (t *Tracker) recomputeScoreEndsWith(q domain.Quest, rec *domain.UserQuestProgress, ev domain.ProgressEvent) int {
	if ev.Kind != domain.EventSessionEnded || ev.Session == nil {
		return rec.CurrentProgress
	}

	digit := q.TargetValue % 10
	if q.Config.Digit != nil {
		digit = *q.Config.Digit
	}

	if ev.Session.Score%10 == digit {
		return maxInt(rec.CurrentProgress, 1)
	}
	return rec.CurrentProgress
}

// recomputeLoginAfter24h increments at most once per calendar day, on the
// first login whose gap since the previous login is at least 24 hours.
func (t *Tracker) recomputeLoginAfter24h(rec *domain.UserQuestProgress, ev domain.ProgressEvent) (int, bool, error) {
	if ev.Kind != domain.EventLogin || ev.PrevLoginAt.IsZero() {
		return rec.CurrentProgress, false, nil
	}

	today := dayKey(ev.OccurredAt)
	if rec.Extra.LastLoginBonusDate == today {
		return rec.CurrentProgress, false, nil
	}
	if ev.OccurredAt.Sub(ev.PrevLoginAt) < 24*time.Hour {
		return rec.CurrentProgress, false, nil
	}

	rec.Extra.LastLoginBonusDate = today
	return rec.CurrentProgress + 1, true, nil
}

// recomputeLeaderboardTop is non-monotonic: progress pins to the target
// while the user holds a qualifying weekly rank and regresses to zero when
// the rank slips (unless the quest already completed this window).
func (t *Tracker) recomputeLeaderboardTop(ctx context.Context, q domain.Quest, rec *domain.UserQuestProgress, ev domain.ProgressEvent) (int, bool, error) {
	year, week := ev.OccurredAt.UTC().ISOWeek()
	rank, ranked, err := t.ranks.WeeklyRank(ctx, rec.UserID, year, week)
	if err != nil {
		return 0, false, err
	}

	if ranked && rank <= q.TargetValue {
		return q.TargetValue, false, nil
	}
	return 0, false, nil
}

// recomputeGameSpecific folds a matching session into the per-game
// cumulative counters, then reads the one metric this quest tracks.
func (t *Tracker) recomputeGameSpecific(q domain.Quest, rec *domain.UserQuestProgress, ev domain.ProgressEvent) (int, bool, error) {
	extraChanged := false

	if ev.Kind == domain.EventSessionEnded && ev.Session != nil && ev.Session.GameID == q.Config.GameID {
		if rec.Extra.Cumulative == nil {
			rec.Extra.Cumulative = domain.NewCumulativeState(q.Config.GameID)
		}
		updateCumulative(rec.Extra.Cumulative, ev.Session)
		extraChanged = true
	}

	return metricValue(rec.Extra.Cumulative, q.Config.Metric), extraChanged, nil
}
