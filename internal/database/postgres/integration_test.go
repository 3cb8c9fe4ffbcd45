package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/playverse/PlayQuest_Go/internal/database"
	"github.com/playverse/PlayQuest_Go/internal/database/schema"
	"github.com/playverse/PlayQuest_Go/internal/domain"
)

// startTestDB brings up a throwaway Postgres container with the full schema.
func startTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(connStr, 10, 30*time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, schema.SchemaSQL); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	return pool
}

func TestQuestProgressRepository_Integration(t *testing.T) {
	pool := startTestDB(t)
	ctx := context.Background()
	repo := NewQuestProgressRepository(pool)

	// Missing record reads as nil, nil.
	rec, err := repo.Get(ctx, "user-1", 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record, got %+v", rec)
	}

	started := time.Now().UTC().Truncate(time.Second)
	fresh := &domain.UserQuestProgress{
		UserID: "user-1", QuestID: 1, CurrentProgress: 2, StartedAt: started,
		Extra: domain.ProgressExtra{LastResetDate: "2026-08-28"},
	}
	if err := repo.Upsert(ctx, fresh); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if fresh.Version != 1 {
		t.Errorf("expected version 1 after insert, got %d", fresh.Version)
	}

	got, err := repo.Get(ctx, "user-1", 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.CurrentProgress != 2 || got.Extra.LastResetDate != "2026-08-28" {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	// Stale version loses the race.
	stale := *got
	got.CurrentProgress = 3
	if err := repo.Upsert(ctx, got); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	stale.CurrentProgress = 99
	if err := repo.Upsert(ctx, &stale); err != domain.ErrConcurrentModification {
		t.Errorf("expected ErrConcurrentModification, got %v", err)
	}

	// Completed counting excludes the named quest.
	done := time.Now().UTC()
	completed := &domain.UserQuestProgress{
		UserID: "user-1", QuestID: 2, CurrentProgress: 5,
		IsCompleted: true, CompletedAt: &done, StartedAt: started,
	}
	if err := repo.Upsert(ctx, completed); err != nil {
		t.Fatalf("insert completed failed: %v", err)
	}
	n, err := repo.CountCompleted(ctx, "user-1", 2)
	if err != nil {
		t.Fatalf("CountCompleted failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 completed excluding quest 2, got %d", n)
	}
	n, err = repo.CountCompleted(ctx, "user-1", 99)
	if err != nil {
		t.Fatalf("CountCompleted failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 completed quest, got %d", n)
	}
}

func TestQuestProgressRepository_ConcurrentUpserts_Integration(t *testing.T) {
	pool := startTestDB(t)
	ctx := context.Background()
	repo := NewQuestProgressRepository(pool)

	base := &domain.UserQuestProgress{UserID: "racer", QuestID: 1, StartedAt: time.Now().UTC()}
	if err := repo.Upsert(ctx, base); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	const workers = 10
	var wg sync.WaitGroup
	conflicts := make(chan struct{}, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := repo.Get(ctx, "racer", 1)
			if err != nil || rec == nil {
				t.Errorf("Get failed: %v", err)
				return
			}
			rec.CurrentProgress++
			if err := repo.Upsert(ctx, rec); err == domain.ErrConcurrentModification {
				conflicts <- struct{}{}
			} else if err != nil {
				t.Errorf("Upsert failed: %v", err)
			}
		}()
	}
	wg.Wait()
	close(conflicts)

	final, err := repo.Get(ctx, "racer", 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	// Every write that succeeded bumped the version exactly once.
	lost := 0
	for range conflicts {
		lost++
	}
	if final.Version != 1+(workers-lost) {
		t.Errorf("version %d does not match %d successful writes", final.Version, workers-lost)
	}
}

func TestSessionHistoryRepository_Integration(t *testing.T) {
	pool := startTestDB(t)
	ctx := context.Background()
	repo := NewSessionHistoryRepository(pool)

	now := time.Now().UTC()
	record := func(gameID string, score, duration int, xp float64, at time.Time) {
		s, err := domain.NewSessionContext(gameID, score, duration, false, 1.0, 0, 0, 0, nil)
		if err != nil {
			t.Fatalf("session context: %v", err)
		}
		if err := repo.RecordSession(ctx, "user-1", s, xp, at); err != nil {
			t.Fatalf("RecordSession failed: %v", err)
		}
	}

	record(domain.GameSeven, 500, 120, 6.0, now.Add(-48*time.Hour))
	record(domain.GameSeven, 1500, 180, 15.5, now)
	record(domain.GameRunner, 900, 300, 9.5, now)

	n, err := repo.CountSessions(ctx, "user-1", nil, "")
	if err != nil || n != 3 {
		t.Errorf("CountSessions all-time = %d, %v; want 3", n, err)
	}

	since := now.Add(-time.Hour)
	n, err = repo.CountSessions(ctx, "user-1", &since, "")
	if err != nil || n != 2 {
		t.Errorf("CountSessions windowed = %d, %v; want 2", n, err)
	}

	sum, err := repo.SumDuration(ctx, "user-1", nil, domain.GameSeven)
	if err != nil || sum != 300 {
		t.Errorf("SumDuration seven = %d, %v; want 300", sum, err)
	}

	total, err := repo.TotalXP(ctx, "user-1")
	if err != nil || total != 31.0 {
		t.Errorf("TotalXP = %v, %v; want 31.0", total, err)
	}

	best, err := repo.MaxSessionsPerGame(ctx, "user-1", nil)
	if err != nil || best != 2 {
		t.Errorf("MaxSessionsPerGame = %d, %v; want 2", best, err)
	}

	n, err = repo.CountSessionsWithMinScore(ctx, "user-1", domain.GameSeven, 1000, nil)
	if err != nil || n != 1 {
		t.Errorf("CountSessionsWithMinScore = %d, %v; want 1", n, err)
	}
}

func TestLoginsRepository_Integration(t *testing.T) {
	pool := startTestDB(t)
	ctx := context.Background()
	repo := NewLoginsRepository(pool)

	day1 := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)

	streak, prev, err := repo.RecordLogin(ctx, "user-1", day1)
	if err != nil {
		t.Fatalf("RecordLogin failed: %v", err)
	}
	if streak != 1 || !prev.IsZero() {
		t.Errorf("first login: streak=%d prev=%v; want 1, zero", streak, prev)
	}

	// Same day keeps the streak.
	streak, prev, err = repo.RecordLogin(ctx, "user-1", day1.Add(6*time.Hour))
	if err != nil || streak != 1 {
		t.Errorf("same-day login: streak=%d, %v; want 1", streak, err)
	}
	if prev.IsZero() {
		t.Error("same-day login should report the previous login time")
	}

	// Next day increments.
	streak, _, err = repo.RecordLogin(ctx, "user-1", day1.AddDate(0, 0, 1))
	if err != nil || streak != 2 {
		t.Errorf("next-day login: streak=%d, %v; want 2", streak, err)
	}

	// A gap resets to 1.
	streak, _, err = repo.RecordLogin(ctx, "user-1", day1.AddDate(0, 0, 5))
	if err != nil || streak != 1 {
		t.Errorf("gap login: streak=%d, %v; want 1", streak, err)
	}
}

func TestRewardRepository_Integration(t *testing.T) {
	pool := startTestDB(t)
	ctx := context.Background()
	repo := NewRewardRepository(pool)

	if err := repo.IssueQuestReward(ctx, "user-1", 7, 50, 10); err != nil {
		t.Fatalf("IssueQuestReward failed: %v", err)
	}
	if err := repo.IssueQuestReward(ctx, "user-1", 8, 25, 5); err != nil {
		t.Fatalf("IssueQuestReward failed: %v", err)
	}

	var coins, bonusXP int64
	err := pool.QueryRow(ctx, `SELECT coins, bonus_xp FROM user_wallets WHERE user_id = $1`, "user-1").Scan(&coins, &bonusXP)
	if err != nil {
		t.Fatalf("wallet read failed: %v", err)
	}
	if coins != 15 || bonusXP != 75 {
		t.Errorf("wallet = %d coins, %d xp; want 15, 75", coins, bonusXP)
	}

	var entries int
	err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM reward_ledger WHERE user_id = $1`, "user-1").Scan(&entries)
	if err != nil || entries != 2 {
		t.Errorf("ledger entries = %d, %v; want 2", entries, err)
	}
}

func TestXPRulesRepository_Integration(t *testing.T) {
	pool := startTestDB(t)
	ctx := context.Background()
	repo := NewXPRulesRepository(pool)

	_, err := pool.Exec(ctx, `
		INSERT INTO xp_rules (game_id, rule_name, rule_type, parameters, priority, is_active)
		VALUES
			('seven', 'Seven bonus', 'combo', '{"min_score": 100, "min_duration": 60, "bonus_xp": 5}', 50, TRUE),
			('seven', 'Disabled', 'threshold', '{}', 10, FALSE),
			('yatzi', 'Other game', 'combo', '{}', 10, TRUE)
	`)
	if err != nil {
		t.Fatalf("seed rules failed: %v", err)
	}

	rules, err := repo.GetActiveRules(ctx, "seven")
	if err != nil {
		t.Fatalf("GetActiveRules failed: %v", err)
	}

	// 3 seeded platform-wide defaults + 1 active seven rule.
	if len(rules) != 4 {
		t.Fatalf("expected 4 rules, got %d", len(rules))
	}
	for _, r := range rules {
		if r.GameID != "" && r.GameID != "seven" {
			t.Errorf("unexpected rule for game %q", r.GameID)
		}
		if !r.IsActive {
			t.Errorf("inactive rule %q returned", r.Name)
		}
	}
}
