package domain

import "time"

// Notification is a message addressed to a single user, posted as a side
// effect of developer/QA assignment changes.
type Notification struct {
	ID        string
	UserID    string
	Text      string
	Timestamp time.Time
	Read      bool
}
