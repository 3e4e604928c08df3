package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/db"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

const documentColumns = `id, title, content, author_id, last_updated`

// SQLiteDocumentRepo implements DocumentRepo using a SQLite database.
type SQLiteDocumentRepo struct {
	db db.DBTX
}

// NewSQLiteDocumentRepo creates a new SQLiteDocumentRepo.
func NewSQLiteDocumentRepo(conn db.DBTX) *SQLiteDocumentRepo {
	return &SQLiteDocumentRepo{db: conn}
}

func (r *SQLiteDocumentRepo) Create(ctx context.Context, d *domain.DmsDocument) error {
	query := `INSERT INTO dms_documents (` + documentColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.Title, d.Content, d.AuthorID, d.LastUpdated.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}
	return nil
}

func (r *SQLiteDocumentRepo) GetByID(ctx context.Context, id string) (*domain.DmsDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM dms_documents WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var d domain.DmsDocument
	var updatedStr string
	err := row.Scan(&d.ID, &d.Title, &d.Content, &d.AuthorID, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("document: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}
	if d.LastUpdated, err = time.Parse(dateLayout, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing document last_updated: %w", err)
	}
	return &d, nil
}

func (r *SQLiteDocumentRepo) List(ctx context.Context) ([]*domain.DmsDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM dms_documents ORDER BY last_updated DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*domain.DmsDocument
	for rows.Next() {
		var d domain.DmsDocument
		var updatedStr string
		if err := rows.Scan(&d.ID, &d.Title, &d.Content, &d.AuthorID, &updatedStr); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		if d.LastUpdated, err = time.Parse(dateLayout, updatedStr); err != nil {
			return nil, fmt.Errorf("parsing document last_updated: %w", err)
		}
		docs = append(docs, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

func (r *SQLiteDocumentRepo) Update(ctx context.Context, d *domain.DmsDocument) error {
	query := `UPDATE dms_documents SET title = ?, content = ?, author_id = ?, last_updated = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		d.Title, d.Content, d.AuthorID, d.LastUpdated.Format(dateLayout), d.ID)
	if err != nil {
		return fmt.Errorf("updating document: %w", err)
	}
	return nil
}
