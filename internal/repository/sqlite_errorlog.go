package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/db"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

const errorLogColumns = `id, submission_id, description, reported_by_id, timestamp`

// SQLiteErrorLogRepo implements ErrorLogRepo using a SQLite database.
type SQLiteErrorLogRepo struct {
	db db.DBTX
}

// NewSQLiteErrorLogRepo creates a new SQLiteErrorLogRepo.
func NewSQLiteErrorLogRepo(conn db.DBTX) *SQLiteErrorLogRepo {
	return &SQLiteErrorLogRepo{db: conn}
}

func (r *SQLiteErrorLogRepo) Create(ctx context.Context, l *domain.ErrorLog) error {
	query := `INSERT INTO error_logs (` + errorLogColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.SubmissionID, l.Description, l.ReportedByID, l.Timestamp.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting error log: %w", err)
	}
	return nil
}

func (r *SQLiteErrorLogRepo) List(ctx context.Context) ([]*domain.ErrorLog, error) {
	query := `SELECT ` + errorLogColumns + ` FROM error_logs ORDER BY timestamp DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing error logs: %w", err)
	}
	defer rows.Close()
	return r.scanErrorLogs(rows)
}

func (r *SQLiteErrorLogRepo) ListBySubmission(ctx context.Context, submissionID string) ([]*domain.ErrorLog, error) {
	query := `SELECT ` + errorLogColumns + ` FROM error_logs WHERE submission_id = ? ORDER BY timestamp DESC`
	rows, err := r.db.QueryContext(ctx, query, submissionID)
	if err != nil {
		return nil, fmt.Errorf("listing error logs by submission: %w", err)
	}
	defer rows.Close()
	return r.scanErrorLogs(rows)
}

func (r *SQLiteErrorLogRepo) scanErrorLogs(rows *sql.Rows) ([]*domain.ErrorLog, error) {
	var logs []*domain.ErrorLog
	for rows.Next() {
		var l domain.ErrorLog
		var tsStr string
		if err := rows.Scan(&l.ID, &l.SubmissionID, &l.Description, &l.ReportedByID, &tsStr); err != nil {
			return nil, fmt.Errorf("scanning error log row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			return nil, fmt.Errorf("parsing error log timestamp: %w", err)
		}
		l.Timestamp = ts
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating error logs: %w", err)
	}
	return logs, nil
}
