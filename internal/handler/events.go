package handler

import (
	"net/http"
	"strconv"

	"github.com/playverse/PlayQuest_Go/internal/eventlog"
)

const (
	eventsDefaultLimit = 50
	eventsMaxLimit     = 200
)

type EventLogHandler struct {
	audit eventlog.Service
}

func NewEventLogHandler(audit eventlog.Service) *EventLogHandler {
	return &EventLogHandler{audit: audit}
}

// GetRecentEvents returns recent entries from the event audit trail
// @Summary List recent events
// @Description Returns recent audit trail entries, newest first, optionally filtered by user or event type
// @Tags admin
// @Produce json
// @Param user_id query string false "Filter by user ID"
// @Param type query string false "Filter by event type"
// @Param limit query int false "Maximum entries to return (default 50, max 200)"
// @Success 200 {array} eventlog.Entry
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/events [get]
func (h *EventLogHandler) GetRecentEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter eventlog.Filter

	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}
	if eventType := r.URL.Query().Get("type"); eventType != "" {
		filter.EventType = &eventType
	}

	filter.Limit = eventsDefaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if limit > eventsMaxLimit {
			limit = eventsMaxLimit
		}
		filter.Limit = limit
	}

	entries, err := h.audit.RecentEvents(ctx, filter)
	if err != nil {
		respondServiceError(w, r, "Get recent events", err)
		return
	}

	if entries == nil {
		entries = []eventlog.Entry{}
	}
	respondJSON(w, http.StatusOK, entries)
}
