package repository

import "context"

// RewardIssuer credits quest rewards to the user's ledgers. It is only
// invoked by the claim flow; quest completion itself never issues rewards.
type RewardIssuer interface {
	IssueQuestReward(ctx context.Context, userID string, questID, xpReward, coinReward int) error
}
