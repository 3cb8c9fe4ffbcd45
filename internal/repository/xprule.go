package repository

import (
	"context"

	"github.com/playverse/PlayQuest_Go/internal/domain"
)

// XPRules reads the configured reward rules. Rows are owned by configuration
// storage; the engine never writes them.
type XPRules interface {
	// GetActiveRules returns active rules for a game plus platform-wide
	// rules (empty game ID), in catalog order.
	GetActiveRules(ctx context.Context, gameID string) ([]domain.XPRule, error)
}
