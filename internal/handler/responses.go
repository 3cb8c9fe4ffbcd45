package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/playverse/PlayQuest_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestInput   = "Invalid request. Please check your inputs."
	ErrMsgMissingQueryParam     = "Missing required query parameter: %s"
	ErrMsgInvalidRequestSummary = "Request validation failed"

	ErrMsgUserNotFoundError  = "User not found"
	ErrMsgQuestNotFoundError = "Quest not found"
	ErrMsgQuestNotClaimable  = "Quest is not claimable. Complete it first, and claim only once."
	ErrMsgProgressConflict   = "Progress was updated concurrently. Please retry."
	ErrMsgRuleRejectedError  = "XP rule configuration is invalid"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Internal details stay in the logs; clients get an actionable status and message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestInput
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFoundError
	case errors.Is(err, domain.ErrQuestNotClaimable):
		return http.StatusConflict, ErrMsgQuestNotClaimable
	case errors.Is(err, domain.ErrConcurrentModification):
		return http.StatusConflict, ErrMsgProgressConflict
	case errors.Is(err, domain.ErrUnknownRuleType), errors.Is(err, domain.ErrInvalidRuleParameters):
		return http.StatusInternalServerError, ErrMsgRuleRejectedError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Short custom messages (mostly from tests and mocks) pass through
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
