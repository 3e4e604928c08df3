package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/db"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

const metricColumns = `id, user_id, day, hours`

// SQLiteMetricRepo implements MetricRepo using a SQLite database.
type SQLiteMetricRepo struct {
	db db.DBTX
}

// NewSQLiteMetricRepo creates a new SQLiteMetricRepo.
func NewSQLiteMetricRepo(conn db.DBTX) *SQLiteMetricRepo {
	return &SQLiteMetricRepo{db: conn}
}

func (r *SQLiteMetricRepo) AccumulateForDay(ctx context.Context, id, userID string, day time.Time, hours float64) error {
	query := `INSERT INTO user_metrics (id, user_id, day, hours) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, day) DO UPDATE SET hours = hours + excluded.hours`
	_, err := r.db.ExecContext(ctx, query, id, userID, domain.DayStart(day).Format(dateLayout), hours)
	if err != nil {
		return fmt.Errorf("accumulating metric: %w", err)
	}
	return nil
}

func (r *SQLiteMetricRepo) GetForDay(ctx context.Context, userID string, day time.Time) (*domain.UserMetric, error) {
	query := `SELECT ` + metricColumns + ` FROM user_metrics WHERE user_id = ? AND day = ?`
	row := r.db.QueryRowContext(ctx, query, userID, domain.DayStart(day).Format(dateLayout))

	var m domain.UserMetric
	var dayStr string
	err := row.Scan(&m.ID, &m.UserID, &dayStr, &m.Hours)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user metric: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user metric: %w", err)
	}
	if m.Day, err = time.Parse(dateLayout, dayStr); err != nil {
		return nil, fmt.Errorf("parsing metric day: %w", err)
	}
	return &m, nil
}

func (r *SQLiteMetricRepo) ListByUserRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.UserMetric, error) {
	query := `SELECT ` + metricColumns + ` FROM user_metrics
		WHERE user_id = ? AND day >= ? AND day <= ?
		ORDER BY day`
	rows, err := r.db.QueryContext(ctx, query, userID,
		domain.DayStart(start).Format(dateLayout), domain.DayStart(end).Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing metrics by user: %w", err)
	}
	defer rows.Close()
	return r.scanMetrics(rows)
}

func (r *SQLiteMetricRepo) ListRange(ctx context.Context, start, end time.Time) ([]*domain.UserMetric, error) {
	query := `SELECT ` + metricColumns + ` FROM user_metrics
		WHERE day >= ? AND day <= ?
		ORDER BY day`
	rows, err := r.db.QueryContext(ctx, query,
		domain.DayStart(start).Format(dateLayout), domain.DayStart(end).Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing metrics in range: %w", err)
	}
	defer rows.Close()
	return r.scanMetrics(rows)
}

func (r *SQLiteMetricRepo) List(ctx context.Context) ([]*domain.UserMetric, error) {
	query := `SELECT ` + metricColumns + ` FROM user_metrics ORDER BY day`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing metrics: %w", err)
	}
	defer rows.Close()
	return r.scanMetrics(rows)
}

func (r *SQLiteMetricRepo) scanMetrics(rows *sql.Rows) ([]*domain.UserMetric, error) {
	var metrics []*domain.UserMetric
	for rows.Next() {
		var m domain.UserMetric
		var dayStr string
		if err := rows.Scan(&m.ID, &m.UserID, &dayStr, &m.Hours); err != nil {
			return nil, fmt.Errorf("scanning metric row: %w", err)
		}
		day, err := time.Parse(dateLayout, dayStr)
		if err != nil {
			return nil, fmt.Errorf("parsing metric day: %w", err)
		}
		m.Day = day
		metrics = append(metrics, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating metrics: %w", err)
	}
	return metrics, nil
}
