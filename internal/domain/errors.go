package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidInput           = "invalid input"
	ErrMsgUnknownRuleType        = "unknown rule type"
	ErrMsgInvalidRuleParameters  = "invalid rule parameters"
	ErrMsgConcurrentModification = "concurrent modification"
	ErrMsgQuestNotFound          = "quest not found"
	ErrMsgQuestNotClaimable      = "quest not claimable"
	ErrMsgUserNotFound           = "user not found"
)

// Common domain errors
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidInput rejects malformed session contexts before any
	// computation happens; nothing is persisted.
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrUnknownRuleType and ErrInvalidRuleParameters are diagnostic: the
	// offending rule is skipped and the calculation continues.
	ErrUnknownRuleType       = errors.New(ErrMsgUnknownRuleType)
	ErrInvalidRuleParameters = errors.New(ErrMsgInvalidRuleParameters)

	// ErrConcurrentModification is a retryable conflict from the progress
	// store's optimistic version check. The engine performs no retries.
	ErrConcurrentModification = errors.New(ErrMsgConcurrentModification)

	ErrQuestNotFound     = errors.New(ErrMsgQuestNotFound)
	ErrQuestNotClaimable = errors.New(ErrMsgQuestNotClaimable)
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
)
