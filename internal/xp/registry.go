package xp

import (
	"github.com/playverse/PlayQuest_Go/internal/domain"
)

// Strategy computes the XP one configured rule grants for a session.
// Implementations must be stateless; the same instance is shared across
// concurrent calculations.
type Strategy interface {
	Type() domain.RuleType
	Calculate(sctx *domain.SessionContext, params Params) (float64, error)
}

// Registry maps rule types to strategies. It is open for extension: callers
// register new strategies without the calculator changing.
type Registry struct {
	strategies map[domain.RuleType]Strategy
}

// NewRegistry returns a registry pre-loaded with every built-in strategy.
func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[domain.RuleType]Strategy)}
	for _, s := range builtinStrategies() {
		r.Register(s)
	}
	return r
}

// Register adds or replaces the strategy for its rule type.
func (r *Registry) Register(s Strategy) {
	r.strategies[s.Type()] = s
}

// Get resolves a strategy by rule type.
func (r *Registry) Get(t domain.RuleType) (Strategy, bool) {
	s, ok := r.strategies[t]
	return s, ok
}

func builtinStrategies() []Strategy {
	return []Strategy{
		scoreMultiplierStrategy{},
		timeBonusStrategy{},
		thresholdStrategy{},
		highScoreBonusStrategy{},
		comboStrategy{},
		percentileImprovementStrategy{},
		levelProgressionStrategy{},
		distanceBonusStrategy{},
		absoluteImprovementStrategy{},
	}
}
