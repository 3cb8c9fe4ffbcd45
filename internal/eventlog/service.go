package eventlog

import (
	"context"
	"encoding/json"

	"github.com/playverse/PlayQuest_Go/internal/event"
	"github.com/playverse/PlayQuest_Go/internal/logger"
)

// Service maintains a queryable audit trail of every event the engine
// publishes.
type Service interface {
	// Subscribe registers the audit logger on all engine event types.
	Subscribe(bus event.Bus) error

	// RecentEvents retrieves stored records matching the filter, newest first.
	RecentEvents(ctx context.Context, filter Filter) ([]Entry, error)

	// CleanupOldEvents removes records older than the retention period.
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates an audit trail service backed by the given repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SessionEnded,
		event.XPAwarded,
		event.LevelUp,
		event.QuestCompleted,
		event.QuestClaimed,
		event.LoginRecorded,
		event.RankRecomputed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, ok := asMap(evt.Payload)
	if !ok {
		log.Debug(LogMsgEventNotSerializable, "type", evt.Type)
		return nil
	}
	metadata, _ := asMap(evt.Metadata)

	var userID *string
	if uid, ok := payload[payloadKeyUserID].(string); ok {
		userID = &uid
	}

	if err := s.repo.Insert(ctx, string(evt.Type), userID, payload, metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "user_id", userID)
	return nil
}

func (s *service) RecentEvents(ctx context.Context, filter Filter) ([]Entry, error) {
	return s.repo.Query(ctx, filter)
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.DeleteOlderThan(ctx, retentionDays)
}

// asMap converts an event payload to a generic map. Payloads published in
// process are typed structs, so non-map values take a JSON round-trip.
func asMap(v any) (map[string]any, bool) {
	if v == nil {
		return nil, false
	}
	if m, ok := v.(map[string]any); ok {
		return m, true
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false
	}
	return m, true
}
