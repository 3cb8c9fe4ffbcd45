package quest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playverse/PlayQuest_Go/internal/domain"
	"github.com/playverse/PlayQuest_Go/internal/event"
	"github.com/playverse/PlayQuest_Go/internal/level"
	"github.com/playverse/PlayQuest_Go/internal/logger"
	"github.com/playverse/PlayQuest_Go/internal/metrics"
	"github.com/playverse/PlayQuest_Go/internal/repository"
	"github.com/playverse/PlayQuest_Go/internal/xp"
)

// upsertRetries bounds retries when an evaluation loses an optimistic
// concurrency race and has to re-read the record.
const upsertRetries = 3

// SessionResult is the outcome of processing a finished game session.
type SessionResult struct {
	XP             *domain.XPCalculationResult `json:"xp"`
	TotalXP        float64                     `json:"total_xp"`
	Level          int                         `json:"level"`
	NewlyCompleted []domain.Quest              `json:"newly_completed"`
}

// LoginResult is the outcome of recording a login.
type LoginResult struct {
	LoginStreak    int            `json:"login_streak"`
	NewlyCompleted []domain.Quest `json:"newly_completed"`
}

// QuestStatus pairs a quest definition with the user's progress record.
// Progress is nil when the user has never progressed the quest.
type QuestStatus struct {
	Quest    domain.Quest              `json:"quest"`
	Progress *domain.UserQuestProgress `json:"progress,omitempty"`
	State    domain.ProgressState      `json:"state"`
}

// ClaimResult is the outcome of claiming a completed quest's reward.
type ClaimResult struct {
	QuestID    int    `json:"quest_id"`
	Title      string `json:"title"`
	XPReward   int    `json:"xp_reward"`
	CoinReward int    `json:"coin_reward"`
}

// Service is the progression engine's orchestration surface: sessions and
// logins come in, XP and quest progress come out.
type Service interface {
	ProcessSessionEnd(ctx context.Context, userID string, sctx *domain.SessionContext) (*SessionResult, error)
	ProcessLogin(ctx context.Context, userID string, at time.Time) (*LoginResult, error)
	ProcessRankRecompute(ctx context.Context, at time.Time) (int, error)

	PreviewSessionXP(ctx context.Context, sctx *domain.SessionContext) (*domain.XPCalculationResult, error)

	GetActiveQuests(ctx context.Context) ([]domain.Quest, error)
	GetUserQuestProgress(ctx context.Context, userID string) ([]QuestStatus, error)
	ClaimQuestReward(ctx context.Context, userID string, questID int) (*ClaimResult, error)
}

type service struct {
	catalog   *Catalog
	tracker   *Tracker
	calc      *xp.Calculator
	rules     repository.XPRules
	store     repository.QuestProgress
	history   repository.SessionHistory
	ranks     repository.RankLookup
	logins    repository.Logins
	rewards   repository.RewardIssuer
	publisher event.Bus
	levels    *level.Curve
}

// NewService creates the progression service.
func NewService(
	catalog *Catalog,
	tracker *Tracker,
	calc *xp.Calculator,
	rules repository.XPRules,
	store repository.QuestProgress,
	history repository.SessionHistory,
	ranks repository.RankLookup,
	logins repository.Logins,
	rewards repository.RewardIssuer,
	publisher event.Bus,
	levels *level.Curve,
) Service {
	return &service{
		catalog:   catalog,
		tracker:   tracker,
		calc:      calc,
		rules:     rules,
		store:     store,
		history:   history,
		ranks:     ranks,
		logins:    logins,
		rewards:   rewards,
		publisher: publisher,
		levels:    levels,
	}
}

// ProcessSessionEnd awards XP for a finished session, records it in history,
// and advances every active quest. Quest evaluation failures never fail the
// session; the XP award is the one operation that must land.
func (s *service) ProcessSessionEnd(ctx context.Context, userID string, sctx *domain.SessionContext) (*SessionResult, error) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	rules, err := s.rules.GetActiveRules(ctx, sctx.GameID)
	if err != nil {
		// The calculator falls back to the default formula on an empty
		// rule set, so a rules outage degrades rather than fails.
		log.Warn("Failed to load XP rules, using default formula", "game_id", sctx.GameID, "error", err)
		rules = nil
	}

	result := s.calc.Calculate(ctx, rules, sctx)

	prevTotal, err := s.history.TotalXP(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load XP total: %w", err)
	}

	if err := s.history.RecordSession(ctx, userID, sctx, result.TotalXP, now); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	newTotal := prevTotal + result.TotalXP
	oldLevel := s.levels.LevelForXP(prevTotal)
	newLevel := s.levels.LevelForXP(newTotal)

	s.publish(ctx, event.NewSessionEndedEvent(userID, *sctx, result.TotalXP))
	s.publish(ctx, event.NewXPAwardedEvent(userID, sctx.GameID, "session", *result))
	if newLevel > oldLevel {
		log.Info("User leveled up", "user_id", userID, "old_level", oldLevel, "new_level", newLevel)
		s.publish(ctx, event.NewLevelUpEvent(userID, oldLevel, newLevel))
	}

	ev := domain.NewSessionEvent(userID, now, sctx, result.TotalXP)
	completed := s.evaluateActiveQuests(ctx, userID, ev)

	return &SessionResult{
		XP:             result,
		TotalXP:        newTotal,
		Level:          newLevel,
		NewlyCompleted: completed,
	}, nil
}

// ProcessLogin records a login, updates the streak, and advances the
// login-driven quests.
func (s *service) ProcessLogin(ctx context.Context, userID string, at time.Time) (*LoginResult, error) {
	streak, prevLoginAt, err := s.logins.RecordLogin(ctx, userID, at)
	if err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	s.publish(ctx, event.NewLoginRecordedEvent(userID, streak))

	ev := domain.NewLoginEvent(userID, at, streak, prevLoginAt)
	completed := s.evaluateActiveQuests(ctx, userID, ev)

	return &LoginResult{
		LoginStreak:    streak,
		NewlyCompleted: completed,
	}, nil
}

// ProcessRankRecompute re-evaluates leaderboard quests for every user ranked
// in the current ISO week. Returns the number of users processed.
func (s *service) ProcessRankRecompute(ctx context.Context, at time.Time) (int, error) {
	log := logger.FromContext(ctx)
	year, week := at.UTC().ISOWeek()

	users, err := s.ranks.UsersRanked(ctx, year, week)
	if err != nil {
		return 0, fmt.Errorf("failed to list ranked users: %w", err)
	}

	quests, err := s.catalog.ActiveQuests()
	if err != nil {
		return 0, err
	}

	for _, userID := range users {
		ev := domain.NewRankEvent(userID, at)
		for _, q := range quests {
			if q.Type != domain.QuestLeaderboardTop {
				continue
			}
			if _, err := s.evaluateWithRetry(ctx, q, userID, ev); err != nil {
				log.Error("Rank quest evaluation failed",
					"user_id", userID, "quest_id", q.QuestID, "error", err)
			}
		}
	}

	s.publish(ctx, event.NewRankRecomputedEvent(year, week, len(users)))
	log.Info("Rank recompute complete", "year", year, "week", week, "users", len(users))
	return len(users), nil
}

// PreviewSessionXP runs the calculator without recording anything.
func (s *service) PreviewSessionXP(ctx context.Context, sctx *domain.SessionContext) (*domain.XPCalculationResult, error) {
	rules, err := s.rules.GetActiveRules(ctx, sctx.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load XP rules: %w", err)
	}
	return s.calc.Calculate(ctx, rules, sctx), nil
}

// GetActiveQuests lists the quests currently open for progress.
func (s *service) GetActiveQuests(ctx context.Context) ([]domain.Quest, error) {
	return s.catalog.ActiveQuests()
}

// GetUserQuestProgress pairs every active quest with the user's record.
func (s *service) GetUserQuestProgress(ctx context.Context, userID string) ([]QuestStatus, error) {
	quests, err := s.catalog.ActiveQuests()
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quest progress: %w", err)
	}
	byQuest := make(map[int]*domain.UserQuestProgress, len(records))
	for i := range records {
		byQuest[records[i].QuestID] = &records[i]
	}

	statuses := make([]QuestStatus, 0, len(quests))
	for _, q := range quests {
		status := QuestStatus{Quest: q, State: domain.ProgressNotStarted}
		if rec, ok := byQuest[q.QuestID]; ok {
			status.Progress = rec
			status.State = rec.State()
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// ClaimQuestReward issues the reward for a completed, unclaimed quest.
// Completion alone never grants anything; this is the only reward path.
func (s *service) ClaimQuestReward(ctx context.Context, userID string, questID int) (*ClaimResult, error) {
	log := logger.FromContext(ctx)

	q, err := s.catalog.GetQuest(questID)
	if err != nil {
		return nil, err
	}

	var rec *domain.UserQuestProgress
	for attempt := 0; ; attempt++ {
		rec, err = s.store.Get(ctx, userID, questID)
		if err != nil {
			return nil, fmt.Errorf("failed to load quest progress: %w", err)
		}
		if rec == nil || !rec.IsCompleted || rec.IsClaimed {
			return nil, fmt.Errorf("%w: quest %d", domain.ErrQuestNotClaimable, questID)
		}

		now := time.Now().UTC()
		rec.IsClaimed = true
		rec.ClaimedAt = &now

		err = s.store.Upsert(ctx, rec)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrConcurrentModification) && attempt < upsertRetries {
			continue
		}
		return nil, fmt.Errorf("failed to mark quest claimed: %w", err)
	}

	if err := s.rewards.IssueQuestReward(ctx, userID, questID, q.XPReward, q.CoinReward); err != nil {
		// The claim flag is already persisted; surface the failure so the
		// caller can retry issuance out of band.
		log.Error("Reward issuance failed after claim", "user_id", userID, "quest_id", questID, "error", err)
		return nil, fmt.Errorf("failed to issue quest reward: %w", err)
	}

	metrics.QuestClaims.Inc()
	s.publish(ctx, event.NewQuestClaimedEvent(userID, *q))
	log.Info("Quest reward claimed", "user_id", userID, "quest_id", questID,
		"xp_reward", q.XPReward, "coin_reward", q.CoinReward)

	return &ClaimResult{
		QuestID:    q.QuestID,
		Title:      q.Title,
		XPReward:   q.XPReward,
		CoinReward: q.CoinReward,
	}, nil
}

// evaluateActiveQuests runs one progress event through every active quest.
// Individual quest failures are logged and skipped.
func (s *service) evaluateActiveQuests(ctx context.Context, userID string, ev domain.ProgressEvent) []domain.Quest {
	log := logger.FromContext(ctx)

	quests, err := s.catalog.ActiveQuests()
	if err != nil {
		log.Error("Failed to load quest catalog", "error", err)
		return nil
	}

	var completed []domain.Quest
	for _, q := range quests {
		res, err := s.evaluateWithRetry(ctx, q, userID, ev)
		if err != nil {
			log.Error("Quest evaluation failed",
				"user_id", userID, "quest_id", q.QuestID, "quest_type", q.Type, "error", err)
			continue
		}
		if res.NewlyCompleted {
			completed = append(completed, q)
			s.publish(ctx, event.NewQuestCompletedEvent(userID, q))
		}
	}
	return completed
}

// evaluateWithRetry re-runs an evaluation that lost an optimistic
// concurrency race. Each retry re-reads the record, so the recomputation
// stays idempotent.
func (s *service) evaluateWithRetry(ctx context.Context, q domain.Quest, userID string, ev domain.ProgressEvent) (*domain.EvaluationResult, error) {
	var lastErr error
	for attempt := 0; attempt <= upsertRetries; attempt++ {
		res, err := s.tracker.Evaluate(ctx, q, userID, ev)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, domain.ErrConcurrentModification) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *service) publish(ctx context.Context, ev event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(ev.Type)).Inc()
		logger.FromContext(ctx).Warn("Event publish failed", "event_type", ev.Type, "error", err)
	}
}
