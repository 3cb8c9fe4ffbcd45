package quest

import (
	"fmt"
	"time"

	"github.com/playverse/PlayQuest_Go/internal/domain"
)

// Calendar keys and window starts are always computed in UTC so a quest's
// reset boundary does not depend on server locale.

const dayKeyLayout = "2006-01-02"

// dayKey returns the UTC calendar-day marker, e.g. "2026-08-28".
func dayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// weekKey returns the ISO-week marker, e.g. "2026-W35".
func weekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// startOfDay is midnight UTC of t's calendar day.
func startOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfISOWeek is midnight UTC of the Monday beginning t's ISO week.
func startOfISOWeek(t time.Time) time.Time {
	day := startOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the ISO week
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// windowStart maps a quest's reset period to the start of the current
// window; nil means all-time.
func windowStart(period domain.ResetPeriod, now time.Time) *time.Time {
	switch period {
	case domain.ResetDaily:
		start := startOfDay(now)
		return &start
	case domain.ResetWeekly:
		start := startOfISOWeek(now)
		return &start
	default:
		return nil
	}
}
