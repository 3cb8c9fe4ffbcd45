package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/playverse/PlayQuest_Go/internal/database/postgres"
	"github.com/playverse/PlayQuest_Go/internal/eventlog"
	"github.com/playverse/PlayQuest_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	QuestProgress  repository.QuestProgress
	SessionHistory repository.SessionHistory
	XPRules        repository.XPRules
	RankLookup     repository.RankLookup
	Logins         repository.Logins
	Rewards        repository.RewardIssuer
	EventLog       eventlog.Repository
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		QuestProgress:  postgres.NewQuestProgressRepository(dbPool),
		SessionHistory: postgres.NewSessionHistoryRepository(dbPool),
		XPRules:        postgres.NewXPRulesRepository(dbPool),
		RankLookup:     postgres.NewRankLookupRepository(dbPool),
		Logins:         postgres.NewLoginsRepository(dbPool),
		Rewards:        postgres.NewRewardRepository(dbPool),
		EventLog:       postgres.NewEventLogRepository(dbPool),
	}
}
