package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/playverse/PlayQuest_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types published by the progression engine
const (
	SessionEnded   Type = "session.ended"
	XPAwarded      Type = "xp.awarded"
	QuestCompleted Type = "quest.completed"
	QuestClaimed   Type = "quest.claimed"
	LoginRecorded  Type = "login.recorded"
	RankRecomputed Type = "rank.recomputed"
	LevelUp        Type = "level.up"
)

// Typed event payloads for type safety

// SessionEndedPayloadV1 is the typed payload for session completion events
type SessionEndedPayloadV1 struct {
	UserID          string  `json:"user_id"`
	GameID          string  `json:"game_id"`
	Score           int     `json:"score"`
	DurationSeconds int     `json:"duration_seconds"`
	IsNewHighScore  bool    `json:"is_new_high_score"`
	XPEarned        float64 `json:"xp_earned"`
	Timestamp       int64   `json:"timestamp"`
}

// XPAwardedPayloadV1 is the typed payload for XP award events
type XPAwardedPayloadV1 struct {
	UserID     string  `json:"user_id"`
	GameID     string  `json:"game_id,omitempty"`
	TotalXP    float64 `json:"total_xp"`
	BaseXP     float64 `json:"base_xp"`
	Multiplier float64 `json:"multiplier"`
	Source     string  `json:"source"`
	Timestamp  int64   `json:"timestamp"`
}

// QuestCompletedPayloadV1 is the typed payload for quest completion events
type QuestCompletedPayloadV1 struct {
	UserID     string           `json:"user_id"`
	QuestID    int              `json:"quest_id"`
	QuestType  domain.QuestType `json:"quest_type"`
	XPReward   int              `json:"xp_reward"`
	CoinReward int              `json:"coin_reward"`
	Timestamp  int64            `json:"timestamp"`
}

// QuestClaimedPayloadV1 is the typed payload for quest reward claim events
type QuestClaimedPayloadV1 struct {
	UserID     string `json:"user_id"`
	QuestID    int    `json:"quest_id"`
	XPReward   int    `json:"xp_reward"`
	CoinReward int    `json:"coin_reward"`
	Timestamp  int64  `json:"timestamp"`
}

// LoginRecordedPayloadV1 is the typed payload for login events
type LoginRecordedPayloadV1 struct {
	UserID      string `json:"user_id"`
	LoginStreak int    `json:"login_streak"`
	Timestamp   int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	UserID   string `json:"user_id"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}

// RankRecomputedPayloadV1 is the typed payload for weekly rank recompute events
type RankRecomputedPayloadV1 struct {
	Year        int   `json:"year"`
	Week        int   `json:"week"`
	UsersRanked int   `json:"users_ranked"`
	Timestamp   int64 `json:"timestamp"`
}

// Type-safe event constructors

// NewSessionEndedEvent creates a new session completion event
func NewSessionEndedEvent(userID string, sctx domain.SessionContext, xpEarned float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SessionEnded,
		Payload: SessionEndedPayloadV1{
			UserID:          userID,
			GameID:          sctx.GameID,
			Score:           sctx.Score,
			DurationSeconds: sctx.DurationSeconds,
			IsNewHighScore:  sctx.IsNewHighScore,
			XPEarned:        xpEarned,
			Timestamp:       time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewXPAwardedEvent creates a new XP award event
func NewXPAwardedEvent(userID, gameID, source string, result domain.XPCalculationResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    XPAwarded,
		Payload: XPAwardedPayloadV1{
			UserID:     userID,
			GameID:     gameID,
			TotalXP:    result.TotalXP,
			BaseXP:     result.BaseXP,
			Multiplier: result.UserMultiplier,
			Source:     source,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewQuestCompletedEvent creates a new quest completion event
func NewQuestCompletedEvent(userID string, quest domain.Quest) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestCompleted,
		Payload: QuestCompletedPayloadV1{
			UserID:     userID,
			QuestID:    quest.QuestID,
			QuestType:  quest.Type,
			XPReward:   quest.XPReward,
			CoinReward: quest.CoinReward,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewQuestClaimedEvent creates a new quest reward claim event
func NewQuestClaimedEvent(userID string, quest domain.Quest) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestClaimed,
		Payload: QuestClaimedPayloadV1{
			UserID:     userID,
			QuestID:    quest.QuestID,
			XPReward:   quest.XPReward,
			CoinReward: quest.CoinReward,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewLoginRecordedEvent creates a new login event
func NewLoginRecordedEvent(userID string, streak int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LoginRecorded,
		Payload: LoginRecordedPayloadV1{
			UserID:      userID,
			LoginStreak: streak,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewLevelUpEvent creates a new level up event
func NewLevelUpEvent(userID string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			UserID:   userID,
			OldLevel: oldLevel,
			NewLevel: newLevel,
		},
		Metadata: nil,
	}
}

// NewRankRecomputedEvent creates a new weekly rank recompute event
func NewRankRecomputedEvent(year, week, usersRanked int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RankRecomputed,
		Payload: RankRecomputedPayloadV1{
			Year:        year,
			Week:        week,
			UsersRanked: usersRanked,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// all of them run even if earlier ones fail.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
