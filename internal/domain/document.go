package domain

import "time"

// DmsDocument is an internal knowledge-base document.
type DmsDocument struct {
	ID          string
	Title       string
	Content     string
	AuthorID    string
	LastUpdated time.Time
}
