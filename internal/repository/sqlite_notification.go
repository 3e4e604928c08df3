package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/db"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

// SQLiteNotificationRepo implements NotificationRepo using a SQLite database.
type SQLiteNotificationRepo struct {
	db db.DBTX
}

// NewSQLiteNotificationRepo creates a new SQLiteNotificationRepo.
func NewSQLiteNotificationRepo(conn db.DBTX) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{db: conn}
}

func (r *SQLiteNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (id, user_id, text, timestamp, read) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.UserID, n.Text, n.Timestamp.Format(time.RFC3339), boolToInt(n.Read))
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	query := `SELECT id, user_id, text, timestamp, read FROM notifications
		WHERE user_id = ? ORDER BY timestamp DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		var tsStr string
		var readInt int
		if err := rows.Scan(&n.ID, &n.UserID, &n.Text, &tsStr, &readInt); err != nil {
			return nil, fmt.Errorf("scanning notification row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			return nil, fmt.Errorf("parsing notification timestamp: %w", err)
		}
		n.Timestamp = ts
		n.Read = intToBool(readInt)
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}
	return notifications, nil
}

func (r *SQLiteNotificationRepo) MarkRead(ctx context.Context, id string) error {
	query := `UPDATE notifications SET read = 1 WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	return nil
}
