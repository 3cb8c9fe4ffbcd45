package repository

import (
	"context"

	"github.com/playverse/PlayQuest_Go/internal/domain"
)

// QuestProgress is the narrow store for per-(user, quest) progress records.
// Implementations must serialize concurrent writes for the same pair; Upsert
// returns domain.ErrConcurrentModification when the optimistic version check
// fails, and the caller decides whether to retry.
type QuestProgress interface {
	// Get returns nil without error when no record exists yet.
	Get(ctx context.Context, userID string, questID int) (*domain.UserQuestProgress, error)
	Upsert(ctx context.Context, progress *domain.UserQuestProgress) error
	ListByUser(ctx context.Context, userID string) ([]domain.UserQuestProgress, error)

	// CountCompleted counts the user's completed quests, excluding one quest
	// ID so a meta-quest never counts itself.
	CountCompleted(ctx context.Context, userID string, excludeQuestID int) (int, error)
}
