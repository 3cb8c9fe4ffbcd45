package domain

import "time"

// EventKind discriminates the qualifying events a quest can react to.
type EventKind string

const (
	EventSessionEnded  EventKind = "session_ended"
	EventLogin         EventKind = "login"
	EventRankRecompute EventKind = "rank_recompute"
)

// ProgressEvent is one qualifying event fed into quest evaluation. Exactly
// the fields for its Kind are populated; the rest are zero.
type ProgressEvent struct {
	Kind       EventKind
	UserID     string
	OccurredAt time.Time

	// Kind == EventSessionEnded
	Session   *SessionContext
	SessionXP float64 // XP the calculator awarded for this session

	// Kind == EventLogin
	LoginStreak int       // consecutive-day counter maintained by the login collaborator
	PrevLoginAt time.Time // zero when this is the first recorded login
}

// NewSessionEvent builds a session-ended progress event.
func NewSessionEvent(userID string, at time.Time, session *SessionContext, sessionXP float64) ProgressEvent {
	return ProgressEvent{
		Kind:       EventSessionEnded,
		UserID:     userID,
		OccurredAt: at,
		Session:    session,
		SessionXP:  sessionXP,
	}
}

// NewLoginEvent builds a login progress event.
func NewLoginEvent(userID string, at time.Time, streak int, prevLoginAt time.Time) ProgressEvent {
	return ProgressEvent{
		Kind:        EventLogin,
		UserID:      userID,
		OccurredAt:  at,
		LoginStreak: streak,
		PrevLoginAt: prevLoginAt,
	}
}

// NewRankEvent builds a leaderboard-rank recompute event.
func NewRankEvent(userID string, at time.Time) ProgressEvent {
	return ProgressEvent{
		Kind:       EventRankRecompute,
		UserID:     userID,
		OccurredAt: at,
	}
}

// EvaluationResult is what one quest evaluation produces.
type EvaluationResult struct {
	Progress       *UserQuestProgress
	NewlyCompleted bool
}
