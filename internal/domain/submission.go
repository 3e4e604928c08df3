package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTransition is returned when a timer operation is called in a
	// state that does not admit it (e.g. Resume while Running). The original
	// UI made these unreachable by construction; the engine rejects them
	// explicitly so misuse is auditable.
	ErrInvalidTransition = errors.New("invalid timer transition")

	// ErrPauseReasonRequired is returned when Pause is called without a
	// reason from the fixed reason list. No state is mutated.
	ErrPauseReasonRequired = errors.New("pause reason is required")
)

// Submission is a unit of work tracked on the dashboard.
type Submission struct {
	ID            string
	Title         string
	ProjectType   string
	TaskTitle     string
	SubmitterName string

	ProjectPartnerName string
	ProjectPartnerID   string
	ProjectAccountName string
	ProjectAccountID   string
	ProjectStatus      string

	Team   TeamName
	Status TaskStatus

	DeveloperID  string
	QAID         string
	BuildDueDate *time.Time
	QADueDate    *time.Time
	DevTaskHours *float64
	QATaskHours  *float64

	CreatedDate time.Time

	// Timer fields. TimerStartTime is non-nil iff TimerState is TimerRunning.
	// LastTick is the instant of the last transition and serves as the
	// fallback reference when a start time is unexpectedly absent.
	LoggedHours    float64
	TimerState     TimerState
	TimerStartTime *time.Time
	LastTick       time.Time
	PauseReason    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// referenceInstant is the point elapsed time is measured from: the start
// time when present, otherwise the last known checkpoint.
func (s *Submission) referenceInstant() time.Time {
	if s.TimerStartTime != nil {
		return *s.TimerStartTime
	}
	return s.LastTick
}

// accrue closes the open interval at now and returns its length in hours,
// adding it to LoggedHours. Negative intervals (clock gone backwards) are
// treated as zero so LoggedHours never decreases.
func (s *Submission) accrue(now time.Time) float64 {
	hours := now.Sub(s.referenceInstant()).Hours()
	if hours < 0 {
		hours = 0
	}
	s.LoggedHours += hours
	return hours
}

// StartTimer puts a stopped timer into the running state.
func (s *Submission) StartTimer(now time.Time) error {
	if s.TimerState != TimerStopped {
		return fmt.Errorf("start while %s: %w", s.TimerState, ErrInvalidTransition)
	}
	start := now
	s.TimerState = TimerRunning
	s.TimerStartTime = &start
	s.LastTick = now
	s.UpdatedAt = now
	return nil
}

// ApplyStatus sets the submission status and drives the status-coupled timer
// transitions: moving away from "In Progress" while the timer is active stops
// it and accrues the elapsed interval; moving a stopped submission into
// "In Progress" starts it. The returned hours are the interval accrued by a
// stop (zero otherwise); logged reports whether an interval was accrued and
// must be posted to the utilization ledger.
func (s *Submission) ApplyStatus(newStatus TaskStatus, now time.Time) (hours float64, logged bool) {
	s.Status = newStatus

	switch {
	case s.TimerState != TimerStopped && newStatus != StatusInProgress:
		hours = s.accrue(now)
		logged = true
		s.TimerState = TimerStopped
		s.TimerStartTime = nil
		s.PauseReason = ""
	case s.TimerState == TimerStopped && newStatus == StatusInProgress:
		start := now
		s.TimerState = TimerRunning
		s.TimerStartTime = &start
	}

	s.LastTick = now
	s.UpdatedAt = now
	return hours, logged
}

// Pause suspends a running timer, accruing the elapsed interval. The reason
// must be one of PauseReasons; an empty or unknown reason is rejected with
// no state change.
func (s *Submission) Pause(reason string, now time.Time) (float64, error) {
	if reason == "" || !ValidPauseReason(reason) {
		return 0, fmt.Errorf("reason %q: %w", reason, ErrPauseReasonRequired)
	}
	if s.TimerState != TimerRunning {
		return 0, fmt.Errorf("pause while %s: %w", s.TimerState, ErrInvalidTransition)
	}

	hours := s.accrue(now)
	s.TimerState = TimerPaused
	s.TimerStartTime = nil
	s.PauseReason = reason
	s.LastTick = now
	s.UpdatedAt = now
	return hours, nil
}

// Resume restarts a paused timer. Elapsed time while paused is not counted.
func (s *Submission) Resume(now time.Time) error {
	if s.TimerState != TimerPaused {
		return fmt.Errorf("resume while %s: %w", s.TimerState, ErrInvalidTransition)
	}
	start := now
	s.TimerState = TimerRunning
	s.TimerStartTime = &start
	s.PauseReason = ""
	s.LastTick = now
	s.UpdatedAt = now
	return nil
}

// Elapsed returns the length of the currently open interval, truncated to
// whole seconds. Zero unless the timer is running. Read-side only.
func (s *Submission) Elapsed(now time.Time) time.Duration {
	if s.TimerState != TimerRunning || s.TimerStartTime == nil {
		return 0
	}
	d := now.Sub(*s.TimerStartTime)
	if d < 0 {
		return 0
	}
	return d.Truncate(time.Second)
}

// ElapsedDisplay formats the open interval as HH:MM:SS for the live timer
// column. It may be recomputed on every display tick without side effects.
func (s *Submission) ElapsedDisplay(now time.Time) string {
	total := int(s.Elapsed(now) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
