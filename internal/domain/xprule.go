package domain

import "time"

// RuleType identifies an XP calculation strategy.
type RuleType string

// Known strategy identifiers
const (
	RuleScoreMultiplier       RuleType = "score_multiplier"
	RuleTimeBonus             RuleType = "time_bonus"
	RuleThreshold             RuleType = "threshold"
	RuleHighScoreBonus        RuleType = "high_score_bonus"
	RuleCombo                 RuleType = "combo"
	RulePercentileImprovement RuleType = "percentile_improvement"
	RuleLevelProgression      RuleType = "level_progression"
	RuleDistanceBonus         RuleType = "distance_bonus"
	RuleAbsoluteImprovement   RuleType = "absolute_improvement"
)

// XPRule is a configured, prioritized XP-calculation strategy instance scoped
// to a game. Rows are owned by configuration storage and read-only to the
// engine.
type XPRule struct {
	RuleID     int            `json:"rule_id"`
	GameID     string         `json:"game_id"`
	Name       string         `json:"name"`
	Type       RuleType       `json:"type"`
	Parameters map[string]any `json:"parameters"`
	Priority   int            `json:"priority"` // higher evaluated first
	IsActive   bool           `json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// RuleXPBreakdown records what a single rule contributed to a calculation.
type RuleXPBreakdown struct {
	RuleID   int      `json:"rule_id"`
	Name     string   `json:"name"`
	Type     RuleType `json:"type"`
	XPEarned float64  `json:"xp_earned"`
}

// XPCalculationResult is the output of one ComputeXp call.
// TotalXP == round(BaseXP * UserMultiplier, 2) always holds.
type XPCalculationResult struct {
	TotalXP        float64           `json:"total_xp"`
	BaseXP         float64           `json:"base_xp"`
	UserMultiplier float64           `json:"user_multiplier"`
	RuleBreakdown  []RuleXPBreakdown `json:"rule_breakdown"`
}
