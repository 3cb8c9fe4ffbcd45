package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/playverse/PlayQuest_Go/internal/bootstrap"
	"github.com/playverse/PlayQuest_Go/internal/config"
	"github.com/playverse/PlayQuest_Go/internal/database"
	"github.com/playverse/PlayQuest_Go/internal/eventlog"
	"github.com/playverse/PlayQuest_Go/internal/handler"
	"github.com/playverse/PlayQuest_Go/internal/level"
	"github.com/playverse/PlayQuest_Go/internal/quest"
	"github.com/playverse/PlayQuest_Go/internal/scheduler"
	"github.com/playverse/PlayQuest_Go/internal/server"
	"github.com/playverse/PlayQuest_Go/internal/worker"
	"github.com/playverse/PlayQuest_Go/internal/xp"
)

const (
	dbMaxConns       = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute
	shutdownTimeout  = 15 * time.Second
	workerPoolSize   = 2
	workerQueueDepth = 16

	auditCleanupEvery = 24 * time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	slog.Info("Starting PlayQuest", "version", cfg.Version, "environment", cfg.Environment)

	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize event system: %v", err)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	auditTrail := eventlog.NewService(repos.EventLog)

	if err := bootstrap.RegisterEventHandlers(eventBus, auditTrail); err != nil {
		log.Fatalf("Failed to register event handlers: %v", err)
	}

	catalog := quest.NewCatalog(cfg.QuestCatalogPath, cfg.QuestSchemaPath)
	levels := level.New()
	calculator := xp.NewCalculator(xp.NewRegistry())
	tracker := quest.NewTracker(repos.QuestProgress, repos.SessionHistory, repos.RankLookup, levels)

	questService := quest.NewService(
		catalog,
		tracker,
		calculator,
		repos.XPRules,
		repos.QuestProgress,
		repos.SessionHistory,
		repos.RankLookup,
		repos.Logins,
		repos.Rewards,
		publisher,
		levels,
	)

	pool := worker.NewPool(workerPoolSize, workerQueueDepth)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.RankRecomputeEvery, worker.NewRankRecomputeJob(questService))
	sched.Schedule(auditCleanupEvery, eventlog.NewCleanupJob(auditTrail, eventlog.DefaultRetentionDays))

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool, questService, auditTrail)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
	})
}
