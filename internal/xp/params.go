package xp

import (
	"fmt"

	"github.com/playverse/PlayQuest_Go/internal/domain"
)

// Params wraps a rule's string-keyed parameter map. All numeric parameters
// must be non-negative; a violation fails with ErrInvalidRuleParameters and
// the calculator skips the rule.
type Params map[string]any

// Float returns the named parameter, or def when absent.
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}

	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be numeric, got %T", domain.ErrInvalidRuleParameters, key, v)
	}
	if f < 0 {
		return 0, fmt.Errorf("%w: %s must be >= 0, got %f", domain.ErrInvalidRuleParameters, key, f)
	}
	return f, nil
}

// PositiveFloat is Float with a strictly-positive requirement, for
// parameters used as divisors.
func (p Params) PositiveFloat(key string, def float64) (float64, error) {
	f, err := p.Float(key, def)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, fmt.Errorf("%w: %s must be > 0, got %f", domain.ErrInvalidRuleParameters, key, f)
	}
	return f, nil
}

// Thresholds decodes the threshold strategy's tier list. Each tier carries a
// score floor and the XP it grants.
func (p Params) Thresholds(key string) ([]Threshold, error) {
	v, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s is required", domain.ErrInvalidRuleParameters, key)
	}

	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a list, got %T", domain.ErrInvalidRuleParameters, key, v)
	}

	tiers := make([]Threshold, 0, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] must be an object", domain.ErrInvalidRuleParameters, key, i)
		}

		score, ok := toFloat(entry["score"])
		if !ok || score < 0 {
			return nil, fmt.Errorf("%w: %s[%d].score must be a number >= 0", domain.ErrInvalidRuleParameters, key, i)
		}
		xpVal, ok := toFloat(entry["xp"])
		if !ok || xpVal < 0 {
			return nil, fmt.Errorf("%w: %s[%d].xp must be a number >= 0", domain.ErrInvalidRuleParameters, key, i)
		}

		tiers = append(tiers, Threshold{Score: int(score), XP: xpVal})
	}
	return tiers, nil
}

// Threshold is one tier of the threshold strategy.
type Threshold struct {
	Score int
	XP    float64
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
