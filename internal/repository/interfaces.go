package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByName matches the display name case-insensitively.
	GetByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

type SubmissionRepo interface {
	Create(ctx context.Context, s *domain.Submission) error
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	List(ctx context.Context) ([]*domain.Submission, error)
	ListByTeam(ctx context.Context, team domain.TeamName) ([]*domain.Submission, error)
	// ExistsByTitlePair reports whether a committed submission already has
	// the given (title, task title) pair; the duplicate key for bulk import.
	ExistsByTitlePair(ctx context.Context, title, taskTitle string) (bool, error)
	// CountsByTeam returns per-team submission totals plus the count of
	// submissions created on the given day.
	CountsByTeam(ctx context.Context, today time.Time) (map[domain.TeamName]domain.SubmissionStats, error)
	Update(ctx context.Context, s *domain.Submission) error
	DeleteMany(ctx context.Context, ids []string) error
}

type MetricRepo interface {
	// AccumulateForDay adds hours to the ledger row for (userID, day),
	// creating the row with the given id when none exists. The id is used
	// only on insert.
	AccumulateForDay(ctx context.Context, id, userID string, day time.Time, hours float64) error
	GetForDay(ctx context.Context, userID string, day time.Time) (*domain.UserMetric, error)
	ListByUserRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.UserMetric, error)
	ListRange(ctx context.Context, start, end time.Time) ([]*domain.UserMetric, error)
	List(ctx context.Context) ([]*domain.UserMetric, error)
}

type ErrorLogRepo interface {
	Create(ctx context.Context, l *domain.ErrorLog) error
	// List returns error logs newest first.
	List(ctx context.Context) ([]*domain.ErrorLog, error)
	ListBySubmission(ctx context.Context, submissionID string) ([]*domain.ErrorLog, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	// ListByUser returns a user's notifications newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type DocumentRepo interface {
	Create(ctx context.Context, d *domain.DmsDocument) error
	GetByID(ctx context.Context, id string) (*domain.DmsDocument, error)
	List(ctx context.Context) ([]*domain.DmsDocument, error)
	Update(ctx context.Context, d *domain.DmsDocument) error
}
