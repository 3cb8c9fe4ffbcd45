package domain

import "fmt"

// SessionContext is the normalized, validated record of one finished game
// session. It is immutable once built and lives for a single calculation or
// evaluation call.
type SessionContext struct {
	GameID            string
	Score             int
	DurationSeconds   int
	IsNewHighScore    bool
	UserMultiplier    float64
	PreviousHighScore int
	LevelsCompleted   int
	Distance          float64
	Extra             map[string]any
}

// NewSessionContext validates a raw finished-session event and returns a
// typed context. All numeric fields must be non-negative; a negative value
// fails with ErrInvalidInput before any computation happens.
func NewSessionContext(gameID string, score, durationSeconds int, isNewHighScore bool, userMultiplier float64, previousHighScore, levelsCompleted int, distance float64, extra map[string]any) (*SessionContext, error) {
	if score < 0 {
		return nil, fmt.Errorf("%w: score must be >= 0, got %d", ErrInvalidInput, score)
	}
	if durationSeconds < 0 {
		return nil, fmt.Errorf("%w: duration_seconds must be >= 0, got %d", ErrInvalidInput, durationSeconds)
	}
	if userMultiplier < 0 {
		return nil, fmt.Errorf("%w: user_multiplier must be >= 0, got %f", ErrInvalidInput, userMultiplier)
	}
	if previousHighScore < 0 {
		return nil, fmt.Errorf("%w: previous_high_score must be >= 0, got %d", ErrInvalidInput, previousHighScore)
	}
	if levelsCompleted < 0 {
		return nil, fmt.Errorf("%w: levels_completed must be >= 0, got %d", ErrInvalidInput, levelsCompleted)
	}
	if distance < 0 {
		return nil, fmt.Errorf("%w: distance must be >= 0, got %f", ErrInvalidInput, distance)
	}

	ctx := &SessionContext{
		GameID:            gameID,
		Score:             score,
		DurationSeconds:   durationSeconds,
		IsNewHighScore:    isNewHighScore,
		UserMultiplier:    userMultiplier,
		PreviousHighScore: previousHighScore,
		LevelsCompleted:   levelsCompleted,
		Distance:          distance,
	}

	if len(extra) > 0 {
		ctx.Extra = make(map[string]any, len(extra))
		for k, v := range extra {
			ctx.Extra[k] = v
		}
	}

	return ctx, nil
}

// ExtraBool reads a boolean game-specific stat, tolerating the loosely typed
// values JSON decoding produces.
func (c *SessionContext) ExtraBool(key string) bool {
	v, ok := c.Extra[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// ExtraInt reads an integer game-specific stat. JSON numbers arrive as
// float64, so both representations are accepted.
func (c *SessionContext) ExtraInt(key string) int {
	switch v := c.Extra[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
