package xp

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/playverse/PlayQuest_Go/internal/domain"
	"github.com/playverse/PlayQuest_Go/internal/logger"
	"github.com/playverse/PlayQuest_Go/internal/metrics"
)

// Default fallback formula constants, applied when no rules are configured.
const (
	defaultScoreFactor      = 0.01
	defaultXPPerMinute      = 0.1
	defaultMaxMinutes       = 10.0
	defaultHighScoreBonusXP = 10.0
)

// Skip reasons for the rules-skipped metric
const (
	skipReasonUnknownType = "unknown_type"
	skipReasonBadParams   = "invalid_parameters"
	skipReasonStrategyErr = "strategy_error"
)

// Calculator turns a finished session into an XP amount by evaluating a
// prioritized rule set. It never fails for a well-formed session context:
// broken rules are skipped with a diagnostic, and an empty rule set falls
// back to the default formula.
type Calculator struct {
	registry *Registry
}

// NewCalculator creates a calculator backed by the given strategy registry.
func NewCalculator(registry *Registry) *Calculator {
	return &Calculator{registry: registry}
}

// Calculate evaluates the active rules for the session's game, highest
// priority first (ties keep catalog order), and returns the total alongside a
// per-rule breakdown. TotalXP is round(BaseXP * UserMultiplier, 2) and BaseXP
// equals the sum of the breakdown entries.
func (c *Calculator) Calculate(ctx context.Context, rules []domain.XPRule, sctx *domain.SessionContext) *domain.XPCalculationResult {
	log := logger.FromContext(ctx)

	applicable := filterRules(rules, sctx.GameID)
	sort.SliceStable(applicable, func(i, j int) bool {
		return applicable[i].Priority > applicable[j].Priority
	})

	result := &domain.XPCalculationResult{
		UserMultiplier: sctx.UserMultiplier,
		RuleBreakdown:  []domain.RuleXPBreakdown{},
	}

	if len(applicable) == 0 {
		base := round2(c.defaultFormula(sctx))
		result.BaseXP = base
		result.TotalXP = round2(base * sctx.UserMultiplier)
		result.RuleBreakdown = append(result.RuleBreakdown, domain.RuleXPBreakdown{
			Name:     "default_formula",
			Type:     "default",
			XPEarned: base,
		})
		metrics.XPCalculations.WithLabelValues(sctx.GameID).Inc()
		return result
	}

	base := 0.0
	for _, rule := range applicable {
		strategy, ok := c.registry.Get(rule.Type)
		if !ok {
			log.Warn("Skipping rule with unknown type", "rule_id", rule.RuleID, "rule_type", rule.Type)
			metrics.XPRulesSkipped.WithLabelValues(string(rule.Type), skipReasonUnknownType).Inc()
			continue
		}

		earned, err := strategy.Calculate(sctx, Params(rule.Parameters))
		if err != nil {
			reason := skipReasonStrategyErr
			if isParamError(err) {
				reason = skipReasonBadParams
			}
			log.Warn("Skipping rule", "rule_id", rule.RuleID, "rule_type", rule.Type, "error", err)
			metrics.XPRulesSkipped.WithLabelValues(string(rule.Type), reason).Inc()
			continue
		}

		earned = round2(earned)
		base += earned
		result.RuleBreakdown = append(result.RuleBreakdown, domain.RuleXPBreakdown{
			RuleID:   rule.RuleID,
			Name:     rule.Name,
			Type:     rule.Type,
			XPEarned: earned,
		})
	}

	result.BaseXP = round2(base)
	result.TotalXP = round2(result.BaseXP * sctx.UserMultiplier)

	metrics.XPCalculations.WithLabelValues(sctx.GameID).Inc()
	metrics.XPAwarded.WithLabelValues(sctx.GameID).Add(result.TotalXP)

	return result
}

// defaultFormula guarantees every session yields a defined reward even with
// no configuration present.
func (c *Calculator) defaultFormula(sctx *domain.SessionContext) float64 {
	base := float64(sctx.Score) * defaultScoreFactor
	base += math.Min(float64(sctx.DurationSeconds)/60, defaultMaxMinutes) * defaultXPPerMinute
	if sctx.IsNewHighScore {
		base += defaultHighScoreBonusXP
	}
	return base
}

func filterRules(rules []domain.XPRule, gameID string) []domain.XPRule {
	filtered := make([]domain.XPRule, 0, len(rules))
	for _, r := range rules {
		if !r.IsActive {
			continue
		}
		// An empty rule game ID means the rule applies platform-wide.
		if r.GameID != "" && gameID != "" && r.GameID != gameID {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func isParamError(err error) bool {
	return errors.Is(err, domain.ErrInvalidRuleParameters)
}

// round2 rounds half away from zero to 2 decimals; all XP values here are
// non-negative, so this matches standard half-up rounding.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
