package domain

import "strings"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

type TaskStatus string

const (
	StatusOpen              TaskStatus = "Open"
	StatusPending           TaskStatus = "Pending"
	StatusInProgress        TaskStatus = "In Progress"
	StatusQAReview          TaskStatus = "QA Review"
	StatusWaitingOnCustomer TaskStatus = "Waiting on Customer"
	StatusCompleted         TaskStatus = "Completed"
)

// AllTaskStatuses lists the closed status set in display order.
var AllTaskStatuses = []TaskStatus{
	StatusOpen,
	StatusPending,
	StatusInProgress,
	StatusQAReview,
	StatusWaitingOnCustomer,
	StatusCompleted,
}

// ParseTaskStatus matches a free-text status against the closed enum,
// trimming whitespace and ignoring case. The second return is false
// when the value matches nothing.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	trimmed := strings.TrimSpace(s)
	for _, status := range AllTaskStatuses {
		if strings.EqualFold(string(status), trimmed) {
			return status, true
		}
	}
	return "", false
}

type TimerState string

const (
	TimerStopped TimerState = "stopped"
	TimerRunning TimerState = "running"
	TimerPaused  TimerState = "paused"
)

type TeamName string

const (
	TeamHighVelocity TeamName = "High Velocity"
	TeamAgency       TeamName = "Agency"
	TeamVerticals    TeamName = "Verticals"
	TeamBroadlyDuda  TeamName = "BroadlyDuda"
)

// AllTeams lists the fixed set of team names.
var AllTeams = []TeamName{TeamHighVelocity, TeamAgency, TeamVerticals, TeamBroadlyDuda}

// ValidTeam reports whether name is one of the fixed team names.
func ValidTeam(name TeamName) bool {
	for _, t := range AllTeams {
		if t == name {
			return true
		}
	}
	return false
}

// PauseReasons is the fixed set of reasons a running timer may be paused with.
var PauseReasons = []string{"Meeting", "Break", "High Priority Task", "End of Day"}

// ValidPauseReason reports whether reason is one of PauseReasons.
func ValidPauseReason(reason string) bool {
	for _, r := range PauseReasons {
		if r == reason {
			return true
		}
	}
	return false
}
