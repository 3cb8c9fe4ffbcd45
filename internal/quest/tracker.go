package quest

import (
	"context"
	"time"

	"github.com/playverse/PlayQuest_Go/internal/domain"
	"github.com/playverse/PlayQuest_Go/internal/level"
	"github.com/playverse/PlayQuest_Go/internal/logger"
	"github.com/playverse/PlayQuest_Go/internal/metrics"
	"github.com/playverse/PlayQuest_Go/internal/repository"
)

// Tracker is the per-(user, quest) progress state machine. Each Evaluate
// call is a pure function of (quest definition, event, stored state); the
// store serializes concurrent writes for the same pair, the tracker holds no
// locks and no timers. Reset windows are applied lazily on the next event.
type Tracker struct {
	store   repository.QuestProgress
	history repository.SessionHistory
	ranks   repository.RankLookup
	levels  *level.Curve
}

// NewTracker wires the tracker to its collaborators.
func NewTracker(store repository.QuestProgress, history repository.SessionHistory, ranks repository.RankLookup, levels *level.Curve) *Tracker {
	return &Tracker{
		store:   store,
		history: history,
		ranks:   ranks,
		levels:  levels,
	}
}

// Evaluate applies one qualifying event to one quest: lazy record creation,
// window reset, progress recompute, completion detection, persistence.
// Re-evaluating with no new qualifying event and no window rollover leaves
// the stored record untouched.
func (t *Tracker) Evaluate(ctx context.Context, q domain.Quest, userID string, ev domain.ProgressEvent) (*domain.EvaluationResult, error) {
	log := logger.FromContext(ctx)
	metrics.QuestEvaluations.WithLabelValues(string(q.Type)).Inc()

	rec, err := t.store.Get(ctx, userID, q.QuestID)
	if err != nil {
		return nil, err
	}

	changed := false
	if rec == nil {
		rec = &domain.UserQuestProgress{
			UserID:    userID,
			QuestID:   q.QuestID,
			StartedAt: ev.OccurredAt.UTC(),
		}
		changed = true
	}

	if t.applyResetIfDue(q, rec, ev.OccurredAt) {
		metrics.QuestResets.WithLabelValues(string(q.Type)).Inc()
		log.Debug("Quest window reset", "user_id", userID, "quest_id", q.QuestID, "quest_type", q.Type)
		changed = true
	}

	newlyCompleted := false
	if !rec.IsCompleted {
		progress, extraChanged, err := t.recompute(ctx, q, rec, ev)
		if err != nil {
			return nil, err
		}
		if extraChanged {
			changed = true
		}
		if progress != rec.CurrentProgress {
			rec.CurrentProgress = progress
			changed = true
		}

		if q.TargetValue > 0 && rec.CurrentProgress >= q.TargetValue {
			completedAt := ev.OccurredAt.UTC()
			rec.IsCompleted = true
			rec.CompletedAt = &completedAt
			rec.Extra.LastCompletionDate = dayKey(completedAt)
			newlyCompleted = true
			changed = true

			metrics.QuestCompletions.WithLabelValues(string(q.Type)).Inc()
			log.Info("Quest completed", "user_id", userID, "quest_id", q.QuestID, "quest_type", q.Type, "progress", rec.CurrentProgress)
		}
	}

	if changed {
		if err := t.store.Upsert(ctx, rec); err != nil {
			return nil, err
		}
	}

	return &domain.EvaluationResult{Progress: rec, NewlyCompleted: newlyCompleted}, nil
}

// applyResetIfDue zeroes the record when its window rolled over. Quests
// already completed only reset when configured with resetOnComplete; quests
// still in progress reset at the boundary regardless, which keeps
// rolling-window quests anchored to the calendar rather than to
// first-evaluation time.
func (t *Tracker) applyResetIfDue(q domain.Quest, rec *domain.UserQuestProgress, at time.Time) bool {
	reset := false

	switch effectivePeriod(q) {
	case domain.ResetDaily:
		key := dayKey(at)
		if rec.Extra.LastResetDate != key {
			if !rec.IsCompleted || q.Config.ResetOnComplete {
				resetRecord(rec)
				rec.Extra.LastResetDate = key
				reset = true
			}
		}
	case domain.ResetWeekly:
		key := weekKey(at)
		if rec.Extra.LastResetWeek != key {
			if !rec.IsCompleted || q.Config.ResetOnComplete {
				resetRecord(rec)
				rec.Extra.LastResetWeek = key
				reset = true
			}
		}
	}

	// A completed repeatable quest resets on the first evaluation of a later
	// calendar day even when the period marker already matches (covers
	// quests evaluated more than once per day and repeatables with no
	// period at all).
	if !reset && q.Config.ResetOnComplete && rec.IsCompleted &&
		rec.Extra.LastCompletionDate != "" && rec.Extra.LastCompletionDate < dayKey(at) {
		resetRecord(rec)
		switch effectivePeriod(q) {
		case domain.ResetDaily:
			rec.Extra.LastResetDate = dayKey(at)
		case domain.ResetWeekly:
			rec.Extra.LastResetWeek = weekKey(at)
		}
		reset = true
	}

	return reset
}

// resetRecord returns the record to InProgress at zero. The completion-date
// marker survives as history; it only gates further resets while the record
// is completed.
func resetRecord(rec *domain.UserQuestProgress) {
	rec.CurrentProgress = 0
	rec.IsCompleted = false
	rec.CompletedAt = nil
	rec.IsClaimed = false
	rec.ClaimedAt = nil
	rec.Extra.Cumulative = nil
	rec.Extra.LastLoginBonusDate = ""
}

// effectivePeriod resolves the reset window: an explicit config wins, some
// quest types imply one by themselves.
func effectivePeriod(q domain.Quest) domain.ResetPeriod {
	if q.Config.ResetPeriod != "" && q.Config.ResetPeriod != domain.ResetNone {
		return q.Config.ResetPeriod
	}

	switch q.Type {
	case domain.QuestPlayTimeDaily, domain.QuestXPDaily:
		return domain.ResetDaily
	case domain.QuestPlayGamesWeekly, domain.QuestXPWeekly, domain.QuestLeaderboardTop:
		return domain.ResetWeekly
	default:
		return domain.ResetNone
	}
}
