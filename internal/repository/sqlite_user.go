package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/db"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

const userColumns = `id, name, role, team, password_hash, created_at, updated_at`

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Name,
		string(u.Role),
		string(u.Team),
		u.PasswordHash,
		u.CreatedAt.Format(time.RFC3339),
		u.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteUserRepo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE name = ? COLLATE NOCASE`
	return r.scanUser(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var u domain.User
		var roleStr, teamStr, createdAtStr, updatedAtStr string
		if err := rows.Scan(&u.ID, &u.Name, &roleStr, &teamStr, &u.PasswordHash, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		if err := populateUser(&u, roleStr, teamStr, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

func (r *SQLiteUserRepo) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name = ?, role = ?, team = ?, password_hash = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		u.Name,
		string(u.Role),
		string(u.Team),
		u.PasswordHash,
		u.UpdatedAt.Format(time.RFC3339),
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var roleStr, teamStr, createdAtStr, updatedAtStr string
	err := row.Scan(&u.ID, &u.Name, &roleStr, &teamStr, &u.PasswordHash, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	if err := populateUser(&u, roleStr, teamStr, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &u, nil
}

func populateUser(u *domain.User, roleStr, teamStr, createdAtStr, updatedAtStr string) error {
	u.Role = domain.UserRole(roleStr)
	u.Team = domain.TeamName(teamStr)

	var parseErr error
	u.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing created_at: %w", parseErr)
	}
	u.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return nil
}
