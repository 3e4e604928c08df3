package domain

import "time"

// ErrorLog is a defect report filed against a submission.
type ErrorLog struct {
	ID           string
	SubmissionID string
	Description  string
	ReportedByID string
	Timestamp    time.Time
}
