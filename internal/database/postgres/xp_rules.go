package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/playverse/PlayQuest_Go/internal/domain"
	"github.com/playverse/PlayQuest_Go/internal/repository"
)

type xpRulesRepository struct {
	db *pgxpool.Pool
}

// NewXPRulesRepository creates a PostgreSQL reward rule store.
func NewXPRulesRepository(db *pgxpool.Pool) repository.XPRules {
	return &xpRulesRepository{db: db}
}

// GetActiveRules returns the game's active rules plus the platform-wide ones
// (empty game_id). Priority ordering is applied again by the calculator, so
// the query order is only for stable reads.
func (r *xpRulesRepository) GetActiveRules(ctx context.Context, gameID string) ([]domain.XPRule, error) {
	query := `
		SELECT rule_id, game_id, rule_name, rule_type, parameters, priority, is_active, created_at, updated_at
		FROM xp_rules
		WHERE is_active AND (game_id = $1 OR game_id = '')
		ORDER BY priority DESC, rule_id
	`

	rows, err := r.db.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query XP rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.XPRule
	for rows.Next() {
		var rule domain.XPRule
		var paramsJSON []byte

		if err := rows.Scan(&rule.RuleID, &rule.GameID, &rule.Name, &rule.Type,
			&paramsJSON, &rule.Priority, &rule.IsActive,
			&rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan XP rule: %w", err)
		}

		if len(paramsJSON) > 0 {
			if err := json.Unmarshal(paramsJSON, &rule.Parameters); err != nil {
				return nil, fmt.Errorf("failed to unmarshal rule parameters: %w", err)
			}
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}
