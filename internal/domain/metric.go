package domain

import "time"

// UserMetric is one utilization ledger entry: hours worked by a user on a
// given day. Day is truncated to midnight UTC and, together with UserID,
// forms the natural key; automatic time-logging and manual entries both
// accumulate into the same row.
type UserMetric struct {
	ID     string
	UserID string
	Day    time.Time
	Hours  float64
}

// DayStart truncates t to the start of its day in UTC, the ledger's day key.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
