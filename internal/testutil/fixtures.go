package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

// User options
type UserOption func(*domain.User)

func WithRole(r domain.UserRole) UserOption {
	return func(u *domain.User) {
		u.Role = r
	}
}

func WithUserTeam(t domain.TeamName) UserOption {
	return func(u *domain.User) {
		u.Team = t
	}
}

func WithPasswordHash(h string) UserOption {
	return func(u *domain.User) {
		u.PasswordHash = h
	}
}

func NewTestUser(name string, opts ...UserOption) *domain.User {
	now := time.Now().UTC()
	u := &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      domain.RoleMember,
		Team:      domain.TeamAgency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Submission options
type SubmissionOption func(*domain.Submission)

func WithTeam(t domain.TeamName) SubmissionOption {
	return func(s *domain.Submission) {
		s.Team = t
	}
}

func WithStatus(st domain.TaskStatus) SubmissionOption {
	return func(s *domain.Submission) {
		s.Status = st
	}
}

func WithTaskTitle(title string) SubmissionOption {
	return func(s *domain.Submission) {
		s.TaskTitle = title
	}
}

func WithDeveloper(userID string) SubmissionOption {
	return func(s *domain.Submission) {
		s.DeveloperID = userID
	}
}

func WithQA(userID string) SubmissionOption {
	return func(s *domain.Submission) {
		s.QAID = userID
	}
}

func WithCreatedDate(d time.Time) SubmissionOption {
	return func(s *domain.Submission) {
		s.CreatedDate = domain.DayStart(d)
	}
}

func WithProjectStatus(ps string) SubmissionOption {
	return func(s *domain.Submission) {
		s.ProjectStatus = ps
	}
}

func NewTestSubmission(title string, opts ...SubmissionOption) *domain.Submission {
	now := time.Now().UTC()
	s := &domain.Submission{
		ID:            uuid.New().String(),
		Title:         title,
		ProjectType:   "Homepage build",
		SubmitterName: "System",
		Team:          domain.TeamAgency,
		Status:        domain.StatusPending,
		CreatedDate:   domain.DayStart(now),
		TimerState:    domain.TimerStopped,
		LastTick:      now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
