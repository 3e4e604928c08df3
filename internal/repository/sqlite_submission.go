package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/db"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

// submissionColumns is the canonical SELECT column list for submissions.
const submissionColumns = `id, title, project_type, task_title, submitter_name,
		project_partner_name, project_partner_id, project_account_name, project_account_id, project_status,
		team, status, developer_id, qa_id, build_due_date, qa_due_date, dev_task_hours, qa_task_hours,
		created_date, logged_hours, timer_state, timer_start_time, last_tick, pause_reason,
		created_at, updated_at`

// SQLiteSubmissionRepo implements SubmissionRepo using a SQLite database.
type SQLiteSubmissionRepo struct {
	db db.DBTX
}

// NewSQLiteSubmissionRepo creates a new SQLiteSubmissionRepo.
func NewSQLiteSubmissionRepo(conn db.DBTX) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: conn}
}

func (r *SQLiteSubmissionRepo) Create(ctx context.Context, s *domain.Submission) error {
	query := `INSERT INTO submissions (` + submissionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Title,
		s.ProjectType,
		s.TaskTitle,
		s.SubmitterName,
		s.ProjectPartnerName,
		s.ProjectPartnerID,
		s.ProjectAccountName,
		s.ProjectAccountID,
		s.ProjectStatus,
		string(s.Team),
		string(s.Status),
		s.DeveloperID,
		s.QAID,
		nullableTimeToString(s.BuildDueDate, dateLayout),
		nullableTimeToString(s.QADueDate, dateLayout),
		nullableFloatToValue(s.DevTaskHours),
		nullableFloatToValue(s.QATaskHours),
		s.CreatedDate.Format(dateLayout),
		s.LoggedHours,
		string(s.TimerState),
		nullableTimeToString(s.TimerStartTime, time.RFC3339Nano),
		s.LastTick.Format(time.RFC3339Nano),
		s.PauseReason,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

func (r *SQLiteSubmissionRepo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSubmission(row)
}

func (r *SQLiteSubmissionRepo) List(ctx context.Context) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()
	return r.scanSubmissions(rows)
}

func (r *SQLiteSubmissionRepo) ListByTeam(ctx context.Context, team domain.TeamName) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE team = ? ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, string(team))
	if err != nil {
		return nil, fmt.Errorf("listing submissions by team: %w", err)
	}
	defer rows.Close()
	return r.scanSubmissions(rows)
}

func (r *SQLiteSubmissionRepo) ExistsByTitlePair(ctx context.Context, title, taskTitle string) (bool, error) {
	query := `SELECT 1 FROM submissions WHERE title = ? AND task_title = ? LIMIT 1`
	var one int
	err := r.db.QueryRowContext(ctx, query, title, taskTitle).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking submission title pair: %w", err)
	}
	return true, nil
}

func (r *SQLiteSubmissionRepo) CountsByTeam(ctx context.Context, today time.Time) (map[domain.TeamName]domain.SubmissionStats, error) {
	query := `SELECT team,
			COUNT(*),
			COALESCE(SUM(CASE WHEN created_date = ? THEN 1 ELSE 0 END), 0)
		FROM submissions
		GROUP BY team`
	rows, err := r.db.QueryContext(ctx, query, today.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("counting submissions by team: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.TeamName]domain.SubmissionStats, len(domain.AllTeams))
	for _, team := range domain.AllTeams {
		counts[team] = domain.SubmissionStats{}
	}
	for rows.Next() {
		var team string
		var stats domain.SubmissionStats
		if err := rows.Scan(&team, &stats.Total, &stats.Today); err != nil {
			return nil, fmt.Errorf("scanning team counts: %w", err)
		}
		counts[domain.TeamName(team)] = stats
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteSubmissionRepo) Update(ctx context.Context, s *domain.Submission) error {
	query := `UPDATE submissions SET title = ?, project_type = ?, task_title = ?, submitter_name = ?,
		project_partner_name = ?, project_partner_id = ?, project_account_name = ?, project_account_id = ?, project_status = ?,
		team = ?, status = ?, developer_id = ?, qa_id = ?, build_due_date = ?, qa_due_date = ?,
		dev_task_hours = ?, qa_task_hours = ?, created_date = ?, logged_hours = ?,
		timer_state = ?, timer_start_time = ?, last_tick = ?, pause_reason = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Title,
		s.ProjectType,
		s.TaskTitle,
		s.SubmitterName,
		s.ProjectPartnerName,
		s.ProjectPartnerID,
		s.ProjectAccountName,
		s.ProjectAccountID,
		s.ProjectStatus,
		string(s.Team),
		string(s.Status),
		s.DeveloperID,
		s.QAID,
		nullableTimeToString(s.BuildDueDate, dateLayout),
		nullableTimeToString(s.QADueDate, dateLayout),
		nullableFloatToValue(s.DevTaskHours),
		nullableFloatToValue(s.QATaskHours),
		s.CreatedDate.Format(dateLayout),
		s.LoggedHours,
		string(s.TimerState),
		nullableTimeToString(s.TimerStartTime, time.RFC3339Nano),
		s.LastTick.Format(time.RFC3339Nano),
		s.PauseReason,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating submission: %w", err)
	}
	return nil
}

func (r *SQLiteSubmissionRepo) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	query := `DELETE FROM submissions WHERE id IN (` + placeholders + `)`
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting submissions: %w", err)
	}
	return nil
}

// scanSubmission scans a single submission from a *sql.Row.
func (r *SQLiteSubmissionRepo) scanSubmission(row *sql.Row) (*domain.Submission, error) {
	var s domain.Submission
	var teamStr, statusStr, timerStateStr string
	var buildDueStr, qaDueStr, timerStartStr sql.NullString
	var devHours, qaHours sql.NullFloat64
	var createdDateStr, lastTickStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&s.ID, &s.Title, &s.ProjectType, &s.TaskTitle, &s.SubmitterName,
		&s.ProjectPartnerName, &s.ProjectPartnerID, &s.ProjectAccountName, &s.ProjectAccountID, &s.ProjectStatus,
		&teamStr, &statusStr, &s.DeveloperID, &s.QAID, &buildDueStr, &qaDueStr, &devHours, &qaHours,
		&createdDateStr, &s.LoggedHours, &timerStateStr, &timerStartStr, &lastTickStr, &s.PauseReason,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("submission: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning submission: %w", err)
	}

	return r.populateSubmission(&s, teamStr, statusStr, timerStateStr,
		buildDueStr, qaDueStr, timerStartStr, devHours, qaHours,
		createdDateStr, lastTickStr, createdAtStr, updatedAtStr)
}

// scanSubmissions scans multiple submissions from *sql.Rows.
func (r *SQLiteSubmissionRepo) scanSubmissions(rows *sql.Rows) ([]*domain.Submission, error) {
	var items []*domain.Submission
	for rows.Next() {
		var s domain.Submission
		var teamStr, statusStr, timerStateStr string
		var buildDueStr, qaDueStr, timerStartStr sql.NullString
		var devHours, qaHours sql.NullFloat64
		var createdDateStr, lastTickStr, createdAtStr, updatedAtStr string

		err := rows.Scan(
			&s.ID, &s.Title, &s.ProjectType, &s.TaskTitle, &s.SubmitterName,
			&s.ProjectPartnerName, &s.ProjectPartnerID, &s.ProjectAccountName, &s.ProjectAccountID, &s.ProjectStatus,
			&teamStr, &statusStr, &s.DeveloperID, &s.QAID, &buildDueStr, &qaDueStr, &devHours, &qaHours,
			&createdDateStr, &s.LoggedHours, &timerStateStr, &timerStartStr, &lastTickStr, &s.PauseReason,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning submission row: %w", err)
		}

		item, err := r.populateSubmission(&s, teamStr, statusStr, timerStateStr,
			buildDueStr, qaDueStr, timerStartStr, devHours, qaHours,
			createdDateStr, lastTickStr, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return items, nil
}

// populateSubmission fills in parsed fields on a Submission after scanning raw values.
func (r *SQLiteSubmissionRepo) populateSubmission(
	s *domain.Submission,
	teamStr, statusStr, timerStateStr string,
	buildDueStr, qaDueStr, timerStartStr sql.NullString,
	devHours, qaHours sql.NullFloat64,
	createdDateStr, lastTickStr, createdAtStr, updatedAtStr string,
) (*domain.Submission, error) {
	s.Team = domain.TeamName(teamStr)
	s.Status = domain.TaskStatus(statusStr)
	s.TimerState = domain.TimerState(timerStateStr)
	s.BuildDueDate = parseNullableTime(buildDueStr, dateLayout)
	s.QADueDate = parseNullableTime(qaDueStr, dateLayout)
	s.TimerStartTime = parseNullableTime(timerStartStr, time.RFC3339Nano)
	s.DevTaskHours = parseNullableFloat(devHours)
	s.QATaskHours = parseNullableFloat(qaHours)

	var parseErr error
	s.CreatedDate, parseErr = time.Parse(dateLayout, createdDateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_date: %w", parseErr)
	}
	s.LastTick, parseErr = time.Parse(time.RFC3339Nano, lastTickStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing last_tick: %w", parseErr)
	}
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return s, nil
}
