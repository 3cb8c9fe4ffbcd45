package repository

import (
	"context"
	"time"
)

// Logins records logins and maintains the consecutive-day streak counter the
// login-driven quest types mirror.
type Logins interface {
	// RecordLogin stores the login and returns the resulting streak plus
	// the previous login time (zero when this is the first login).
	RecordLogin(ctx context.Context, userID string, at time.Time) (streak int, prevLoginAt time.Time, err error)
}
