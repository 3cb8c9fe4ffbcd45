package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/playverse/PlayQuest_Go/internal/repository"
)

type rewardRepository struct {
	db *pgxpool.Pool
}

// NewRewardRepository creates a PostgreSQL reward issuer.
func NewRewardRepository(db *pgxpool.Pool) repository.RewardIssuer {
	return &rewardRepository{db: db}
}

// IssueQuestReward credits the wallet and appends a ledger entry in one
// transaction, so wallet totals always reconcile against the ledger.
func (r *rewardRepository) IssueQuestReward(ctx context.Context, userID string, questID, xpReward, coinReward int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reward transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO user_wallets (user_id, coins, bonus_xp)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET coins = user_wallets.coins + EXCLUDED.coins,
		    bonus_xp = user_wallets.bonus_xp + EXCLUDED.bonus_xp,
		    updated_at = NOW()
	`, userID, coinReward, xpReward)
	if err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO reward_ledger (user_id, quest_id, xp_reward, coin_reward)
		VALUES ($1, $2, $3, $4)
	`, userID, questID, xpReward, coinReward)
	if err != nil {
		return fmt.Errorf("failed to append reward ledger: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reward: %w", err)
	}
	return nil
}
