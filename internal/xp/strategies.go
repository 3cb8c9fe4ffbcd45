package xp

import (
	"math"
	"sort"

	"github.com/playverse/PlayQuest_Go/internal/domain"
)

// Default parameter values
const (
	DefaultTimeBonusMaxMinutes = 10.0
)

// scoreMultiplierStrategy: score * multiplier, capped at max_xp when present.
type scoreMultiplierStrategy struct{}

func (scoreMultiplierStrategy) Type() domain.RuleType { return domain.RuleScoreMultiplier }

func (scoreMultiplierStrategy) Calculate(sctx *domain.SessionContext, params Params) (float64, error) {
	multiplier, err := params.Float("multiplier", 0)
	if err != nil {
		return 0, err
	}
	maxXP, err := params.Float("max_xp", math.Inf(1))
	if err != nil {
		return 0, err
	}

	return math.Min(float64(sctx.Score)*multiplier, maxXP), nil
}

// timeBonusStrategy: min(duration/60, max_minutes) * xp_per_minute.
type timeBonusStrategy struct{}

func (timeBonusStrategy) Type() domain.RuleType { return domain.RuleTimeBonus }

func (timeBonusStrategy) Calculate(sctx *domain.SessionContext, params Params) (float64, error) {
	xpPerMinute, err := params.Float("xp_per_minute", 0)
	if err != nil {
		return 0, err
	}
	maxMinutes, err := params.Float("max_minutes", DefaultTimeBonusMaxMinutes)
	if err != nil {
		return 0, err
	}

	minutes := math.Min(float64(sctx.DurationSeconds)/60, maxMinutes)
	return minutes * xpPerMinute, nil
}

// thresholdStrategy grants the XP of the highest tier whose score floor the
// session reached; the boundary is inclusive.
type thresholdStrategy struct{}

func (thresholdStrategy) Type() domain.RuleType { return domain.RuleThreshold }

func (thresholdStrategy) Calculate(sctx *domain.SessionContext, params Params) (float64, error) {
	tiers, err := params.Thresholds("thresholds")
	if err != nil {
		return 0, err
	}

	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Score > tiers[j].Score })

	for _, tier := range tiers {
		if sctx.Score >= tier.Score {
			return tier.XP, nil
		}
	}
	return 0, nil
}

// highScoreBonusStrategy: flat bonus for setting a new personal best.
type highScoreBonusStrategy struct{}

func (highScoreBonusStrategy) Type() domain.RuleType { return domain.RuleHighScoreBonus }

func (highScoreBonusStrategy) Calculate(sctx *domain.SessionContext, params Params) (float64, error) {
	bonusXP, err := params.Float("bonus_xp", 0)
	if err != nil {
		return 0, err
	}

	if !sctx.IsNewHighScore {
		return 0, nil
	}
	return bonusXP, nil
}

// comboStrategy: bonus when both the score and duration floors are met.
type comboStrategy struct{}

func (comboStrategy) Type() domain.RuleType { return domain.RuleCombo }

func (comboStrategy) Calculate(sctx *domain.SessionContext, params Params) (float64, error) {
	minScore, err := params.Float("min_score", 0)
	if err != nil {
		return 0, err
	}
	minDuration, err := params.Float("min_duration", 0)
	if err != nil {
		return 0, err
	}
	bonusXP, err := params.Float("bonus_xp", 0)
	if err != nil {
		return 0, err
	}

	if float64(sctx.Score) >= minScore && float64(sctx.DurationSeconds) >= minDuration {
		return bonusXP, nil
	}
	return 0, nil
}

// percentileImprovementStrategy rewards the relative improvement over the
// previous personal best. Zero unless this session set a new high score and a
// previous one exists to improve on.
type percentileImprovementStrategy struct{}

func (percentileImprovementStrategy) Type() domain.RuleType { return domain.RulePercentileImprovement }

func (percentileImprovementStrategy) Calculate(sctx *domain.SessionContext, params Params) (float64, error) {
	xpPerPercent, err := params.Float("xp_per_percent", 0)
	if err != nil {
		return 0, err
	}
	maxXP, err := params.Float("max_xp", math.Inf(1))
	if err != nil {
		return 0, err
	}

	if !sctx.IsNewHighScore || sctx.PreviousHighScore <= 0 {
		return 0, nil
	}

	improvement := float64(sctx.Score-sctx.PreviousHighScore) / float64(sctx.PreviousHighScore) * 100
	if improvement < 0 {
		return 0, nil
	}
	return math.Min(improvement*xpPerPercent, maxXP), nil
}

// levelProgressionStrategy: sum over completed levels of base_xp + L*increment.
// Uncapped and monotonic in levels completed.
type levelProgressionStrategy struct{}

func (levelProgressionStrategy) Type() domain.RuleType { return domain.RuleLevelProgression }

func (levelProgressionStrategy) Calculate(sctx *domain.SessionContext, params Params) (float64, error) {
	baseXP, err := params.Float("base_xp", 0)
	if err != nil {
		return 0, err
	}
	increment, err := params.Float("increment", 0)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for l := 1; l <= sctx.LevelsCompleted; l++ {
		total += baseXP + float64(l)*increment
	}
	return total, nil
}

// distanceBonusStrategy: XP per full milestone distance covered. Uncapped.
type distanceBonusStrategy struct{}

func (distanceBonusStrategy) Type() domain.RuleType { return domain.RuleDistanceBonus }

func (distanceBonusStrategy) Calculate(sctx *domain.SessionContext, params Params) (float64, error) {
	milestone, err := params.PositiveFloat("milestone_distance", 0)
	if err != nil {
		return 0, err
	}
	xpPerMilestone, err := params.Float("xp_per_milestone", 0)
	if err != nil {
		return 0, err
	}

	return math.Floor(sctx.Distance/milestone) * xpPerMilestone, nil
}

// absoluteImprovementStrategy: XP per point gained over the previous high
// score. Uncapped; zero unless this session set a new high score.
type absoluteImprovementStrategy struct{}

func (absoluteImprovementStrategy) Type() domain.RuleType { return domain.RuleAbsoluteImprovement }

func (absoluteImprovementStrategy) Calculate(sctx *domain.SessionContext, params Params) (float64, error) {
	xpPerPoint, err := params.Float("xp_per_point", 0)
	if err != nil {
		return 0, err
	}

	if !sctx.IsNewHighScore {
		return 0, nil
	}

	gained := sctx.Score - sctx.PreviousHighScore
	if gained < 0 {
		return 0, nil
	}
	return float64(gained) * xpPerPoint, nil
}
