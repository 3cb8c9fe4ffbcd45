package event

import (
	"context"
	"errors"
	"testing"

	"github.com/playverse/PlayQuest_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(QuestCompleted, func(ctx context.Context, ev Event) error {
		if ev.Type != QuestCompleted {
			t.Errorf("Expected event type %s, got %s", QuestCompleted, ev.Type)
		}
		payload, err := DecodePayload[QuestCompletedPayloadV1](ev.Payload)
		if err != nil {
			t.Fatalf("DecodePayload failed: %v", err)
		}
		if payload.QuestID != 42 {
			t.Errorf("Expected quest_id 42, got %d", payload.QuestID)
		}
		handled = true
		return nil
	})

	quest := domain.Quest{QuestID: 42, Type: domain.QuestGameSpecific, XPReward: 100}
	if err := bus.Publish(context.Background(), NewQuestCompletedEvent("user-1", quest)); err != nil {
		t.Errorf("Publish returned error: %v", err)
	}
	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, ev Event) error {
		count++
		return nil
	}

	bus.Subscribe(LoginRecorded, handler)
	bus.Subscribe(LoginRecorded, handler)

	if err := bus.Publish(context.Background(), NewLoginRecordedEvent("user-1", 3)); err != nil {
		t.Errorf("Publish returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	if err := bus.Publish(context.Background(), NewLevelUpEvent("user-1", 1, 2)); err != nil {
		t.Errorf("Publish without subscribers returned error: %v", err)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0

	bus.Subscribe(XPAwarded, func(ctx context.Context, ev Event) error {
		calls++
		return errors.New("handler error")
	})
	bus.Subscribe(XPAwarded, func(ctx context.Context, ev Event) error {
		calls++
		return nil
	})

	result := domain.XPCalculationResult{TotalXP: 30.75, BaseXP: 20.5, UserMultiplier: 1.5}
	err := bus.Publish(context.Background(), NewXPAwardedEvent("user-1", "runner", "session", result))
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
	if calls != 2 {
		t.Errorf("Expected all handlers to run despite error, got %d calls", calls)
	}
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{
		"user_id":      "user-1",
		"login_streak": float64(7),
	}
	payload, err := DecodePayload[LoginRecordedPayloadV1](raw)
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if payload.UserID != "user-1" || payload.LoginStreak != 7 {
		t.Errorf("Unexpected payload: %+v", payload)
	}
}
