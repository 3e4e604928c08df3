package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the set
// can be re-run against an existing database.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'member'
		              CHECK(role IN ('admin','member')),
		team          TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_name ON users(name COLLATE NOCASE)`,

	`CREATE TABLE IF NOT EXISTS submissions (
		id                   TEXT PRIMARY KEY,
		title                TEXT NOT NULL,
		project_type         TEXT NOT NULL DEFAULT '',
		task_title           TEXT NOT NULL DEFAULT '',
		submitter_name       TEXT NOT NULL DEFAULT '',
		project_partner_name TEXT NOT NULL DEFAULT '',
		project_partner_id   TEXT NOT NULL DEFAULT '',
		project_account_name TEXT NOT NULL DEFAULT '',
		project_account_id   TEXT NOT NULL DEFAULT '',
		project_status       TEXT NOT NULL DEFAULT '',
		team                 TEXT NOT NULL,
		status               TEXT NOT NULL DEFAULT 'Pending'
		                     CHECK(status IN ('Open','Pending','In Progress','QA Review','Waiting on Customer','Completed')),
		developer_id         TEXT NOT NULL DEFAULT '',
		qa_id                TEXT NOT NULL DEFAULT '',
		build_due_date       TEXT,
		qa_due_date          TEXT,
		dev_task_hours       REAL,
		qa_task_hours        REAL,
		created_date         TEXT NOT NULL,
		logged_hours         REAL NOT NULL DEFAULT 0 CHECK(logged_hours >= 0),
		timer_state          TEXT NOT NULL DEFAULT 'stopped'
		                     CHECK(timer_state IN ('stopped','running','paused')),
		timer_start_time     TEXT,
		last_tick            TEXT NOT NULL,
		pause_reason         TEXT NOT NULL DEFAULT '',
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_submissions_team ON submissions(team)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_title ON submissions(title, task_title)`,

	`CREATE TABLE IF NOT EXISTS user_metrics (
		id      TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		day     TEXT NOT NULL,
		hours   REAL NOT NULL DEFAULT 0 CHECK(hours >= 0)
	)`,

	// One ledger row per user per day; accumulation happens via upsert.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_metrics_user_day ON user_metrics(user_id, day)`,

	`CREATE TABLE IF NOT EXISTS error_logs (
		id             TEXT PRIMARY KEY,
		submission_id  TEXT NOT NULL REFERENCES submissions(id) ON DELETE CASCADE,
		description    TEXT NOT NULL,
		reported_by_id TEXT NOT NULL,
		timestamp      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_error_logs_submission ON error_logs(submission_id)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id        TEXT PRIMARY KEY,
		user_id   TEXT NOT NULL,
		text      TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		read      INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id)`,

	`CREATE TABLE IF NOT EXISTS dms_documents (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		content      TEXT NOT NULL DEFAULT '',
		author_id    TEXT NOT NULL,
		last_updated TEXT NOT NULL
	)`,
}
