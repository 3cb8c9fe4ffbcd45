package quest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/playverse/PlayQuest_Go/internal/domain"
)

// In-memory fakes for the repository interfaces. The progress store enforces
// the same optimistic version check as the real store so concurrency
// behavior is exercised, not stubbed out.

type fakeProgressStore struct {
	mu      sync.Mutex
	records map[string]domain.UserQuestProgress
	upserts int

	failNextUpsert error
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: make(map[string]domain.UserQuestProgress)}
}

func progressKey(userID string, questID int) string {
	return fmt.Sprintf("%s:%d", userID, questID)
}

func (s *fakeProgressStore) Get(ctx context.Context, userID string, questID int) (*domain.UserQuestProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[progressKey(userID, questID)]
	if !ok {
		return nil, nil
	}
	cp := rec
	return &cp, nil
}

func (s *fakeProgressStore) Upsert(ctx context.Context, progress *domain.UserQuestProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNextUpsert != nil {
		err := s.failNextUpsert
		s.failNextUpsert = nil
		return err
	}

	key := progressKey(progress.UserID, progress.QuestID)
	if existing, ok := s.records[key]; ok && existing.Version != progress.Version {
		return domain.ErrConcurrentModification
	}
	progress.Version++
	s.records[key] = *progress
	s.upserts++
	return nil
}

func (s *fakeProgressStore) ListByUser(ctx context.Context, userID string) ([]domain.UserQuestProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.UserQuestProgress
	for _, rec := range s.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *fakeProgressStore) CountCompleted(ctx context.Context, userID string, excludeQuestID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, rec := range s.records {
		if rec.UserID == userID && rec.QuestID != excludeQuestID && rec.IsCompleted {
			n++
		}
	}
	return n, nil
}

func (s *fakeProgressStore) upsertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upserts
}

type recordedSession struct {
	userID  string
	session domain.SessionContext
	xp      float64
	endedAt time.Time
}

type fakeHistory struct {
	mu       sync.Mutex
	sessions []recordedSession
}

func (h *fakeHistory) RecordSession(ctx context.Context, userID string, session *domain.SessionContext, xpAwarded float64, endedAt time.Time) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions = append(h.sessions, recordedSession{userID: userID, session: *session, xp: xpAwarded, endedAt: endedAt})
	return nil
}

func (h *fakeHistory) visit(userID string, since *time.Time, gameID string, fn func(recordedSession)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.sessions {
		if s.userID != userID {
			continue
		}
		if since != nil && s.endedAt.Before(*since) {
			continue
		}
		if gameID != "" && s.session.GameID != gameID {
			continue
		}
		fn(s)
	}
}

func (h *fakeHistory) CountSessions(ctx context.Context, userID string, since *time.Time, gameID string) (int, error) {
	n := 0
	h.visit(userID, since, gameID, func(recordedSession) { n++ })
	return n, nil
}

func (h *fakeHistory) SumDuration(ctx context.Context, userID string, since *time.Time, gameID string) (int, error) {
	sum := 0
	h.visit(userID, since, gameID, func(s recordedSession) { sum += s.session.DurationSeconds })
	return sum, nil
}

func (h *fakeHistory) SumXP(ctx context.Context, userID string, since *time.Time) (float64, error) {
	sum := 0.0
	h.visit(userID, since, "", func(s recordedSession) { sum += s.xp })
	return sum, nil
}

func (h *fakeHistory) TotalXP(ctx context.Context, userID string) (float64, error) {
	return h.SumXP(ctx, userID, nil)
}

func (h *fakeHistory) MaxSessionsPerGame(ctx context.Context, userID string, since *time.Time) (int, error) {
	perGame := map[string]int{}
	h.visit(userID, since, "", func(s recordedSession) { perGame[s.session.GameID]++ })
	best := 0
	for _, n := range perGame {
		if n > best {
			best = n
		}
	}
	return best, nil
}

func (h *fakeHistory) CountSessionsWithMinScore(ctx context.Context, userID, gameID string, minScore int, since *time.Time) (int, error) {
	n := 0
	h.visit(userID, since, gameID, func(s recordedSession) {
		if s.session.Score >= minScore {
			n++
		}
	})
	return n, nil
}

type fakeRanks struct {
	ranks map[string]int // userID -> rank for any week
}

func (r *fakeRanks) WeeklyRank(ctx context.Context, userID string, year, week int) (int, bool, error) {
	rank, ok := r.ranks[userID]
	return rank, ok, nil
}

func (r *fakeRanks) UsersRanked(ctx context.Context, year, week int) ([]string, error) {
	var users []string
	for userID := range r.ranks {
		users = append(users, userID)
	}
	return users, nil
}

type fakeLogins struct {
	streak int
	prev   time.Time
	err    error
}

func (l *fakeLogins) RecordLogin(ctx context.Context, userID string, at time.Time) (int, time.Time, error) {
	return l.streak, l.prev, l.err
}

type fakeRules struct {
	rules []domain.XPRule
	err   error
}

func (r *fakeRules) GetActiveRules(ctx context.Context, gameID string) ([]domain.XPRule, error) {
	return r.rules, r.err
}

type issuedReward struct {
	userID     string
	questID    int
	xpReward   int
	coinReward int
}

type fakeRewards struct {
	mu     sync.Mutex
	issued []issuedReward
	err    error
}

func (r *fakeRewards) IssueQuestReward(ctx context.Context, userID string, questID, xpReward, coinReward int) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issued = append(r.issued, issuedReward{userID, questID, xpReward, coinReward})
	return nil
}
