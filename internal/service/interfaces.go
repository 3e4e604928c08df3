package service

import (
	"context"
	"io"
	"time"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/importer"
)

// TimerService drives the status-coupled work timer on submissions. Every
// accrued interval is posted to the acting user's daily utilization ledger in
// the same transaction as the submission update.
type TimerService interface {
	ChangeStatus(ctx context.Context, submissionID string, newStatus domain.TaskStatus, actorID string) (*domain.Submission, error)
	Pause(ctx context.Context, submissionID, reason, actorID string) (*domain.Submission, error)
	Resume(ctx context.Context, submissionID string) (*domain.Submission, error)
}

type SubmissionService interface {
	Create(ctx context.Context, s *domain.Submission) error
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	List(ctx context.Context) ([]*domain.Submission, error)
	ListByTeam(ctx context.Context, team domain.TeamName) ([]*domain.Submission, error)
	// Update persists the submission and notifies newly assigned developer/QA
	// users. Reassignment to the same user produces no notification.
	Update(ctx context.Context, s *domain.Submission) error
	Delete(ctx context.Context, ids []string) error
	CountsByTeam(ctx context.Context) (map[domain.TeamName]domain.SubmissionStats, error)
}

// BatchResult is the outcome of a bulk import. Rows are independent: a batch
// can partially succeed, with one message per failed row.
type BatchResult struct {
	SuccessCount   int
	ErrorCount     int
	DuplicateCount int
	Errors         []string
}

type ImportService interface {
	// ImportFile dispatches on the file extension (.csv or .xlsx).
	ImportFile(ctx context.Context, path string) (*BatchResult, error)
	ImportRows(ctx context.Context, rows []importer.Row) (*BatchResult, error)
	ExportCSV(ctx context.Context, w io.Writer) error
	ExportXLSX(ctx context.Context, w io.Writer) error
}

type UserService interface {
	Create(ctx context.Context, name, password string, role domain.UserRole, team domain.TeamName) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Update persists the user; a non-empty newPassword replaces the stored
	// hash, an empty one keeps it.
	Update(ctx context.Context, u *domain.User, newPassword string) error
	Delete(ctx context.Context, id string) error
	Authenticate(ctx context.Context, name, password string) (*domain.User, error)
}

// UtilizationFilter narrows a utilization report. Lead takes precedence over
// Team; UserID applies last.
type UtilizationFilter struct {
	Team   domain.TeamName
	UserID string
	Lead   string
	Start  *time.Time
	End    *time.Time
}

// UtilizationRow is one user's aggregate over the filtered period. Days
// counts ledger entries with positive hours; AvgHours is TotalHours / Days.
type UtilizationRow struct {
	User       *domain.User
	TotalHours float64
	Days       int
	AvgHours   float64
}

// DashboardStats is the role-scoped overview: admins see the whole
// organization, members their own team.
type DashboardStats struct {
	TotalSubmissions int
	InProgress       int
	Pending          int
	Completed        int
	TotalErrors      int
	// AvgUtilization is total hours / active days across relevant users over
	// the trailing 30 days.
	AvgUtilization      float64
	ProjectStatusCounts map[string]int
	TaskStatusCounts    map[domain.TaskStatus]int
	TeamProjectCounts   map[domain.TeamName]int
}

type MetricsService interface {
	// LogTime posts hours to the user's ledger entry for today.
	LogTime(ctx context.Context, userID string, hours float64) error
	// AddEntry posts a manual entry for an arbitrary day; it folds into the
	// existing (user, day) row when one exists.
	AddEntry(ctx context.Context, userID string, hours float64, day time.Time) error
	Utilization(ctx context.Context, f UtilizationFilter) ([]UtilizationRow, error)
	DailySeries(ctx context.Context, userID string, start, end time.Time) ([]*domain.UserMetric, error)
	DashboardStats(ctx context.Context, viewer *domain.User) (*DashboardStats, error)
}

type ErrorLogService interface {
	Report(ctx context.Context, submissionID, description, reportedByID string) (*domain.ErrorLog, error)
	List(ctx context.Context) ([]*domain.ErrorLog, error)
	ListBySubmission(ctx context.Context, submissionID string) ([]*domain.ErrorLog, error)
}

type NotificationService interface {
	Notify(ctx context.Context, userID, text string) error
	ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type DocumentService interface {
	Create(ctx context.Context, title, content, authorID string) (*domain.DmsDocument, error)
	GetByID(ctx context.Context, id string) (*domain.DmsDocument, error)
	List(ctx context.Context) ([]*domain.DmsDocument, error)
	Update(ctx context.Context, d *domain.DmsDocument) error
}
