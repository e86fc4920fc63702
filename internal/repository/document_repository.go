package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"book-reader-server/internal/domain"
)

// PostgresDocumentRepository implements the domain.DocumentRepository interface
type PostgresDocumentRepository struct {
	db     *sql.DB
	logger domain.Logger
}

// NewDocumentRepository creates a new Postgres document repository
func NewDocumentRepository(db *sql.DB, logger domain.Logger) domain.DocumentRepository {
	return &PostgresDocumentRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the documents table when it does not exist yet.
func (r *PostgresDocumentRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS documents (
			key TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			url TEXT NOT NULL,
			pages JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure documents table: %w", err)
	}
	return nil
}

// Create inserts the whole document row in one call. There is no update
// path; a duplicate key fails.
func (r *PostgresDocumentRepository) Create(ctx context.Context, document *domain.Document) error {
	pages := document.Pages
	if pages == nil {
		pages = []string{}
	}
	pagesJSON, err := json.Marshal(pages)
	if err != nil {
		return fmt.Errorf("failed to marshal page text: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO documents (key, user_id, name, url, pages) VALUES ($1, $2, $3, $4, $5)`,
		document.Key, document.UserID, document.Name, document.URL, pagesJSON)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	r.logger.Info("Document created",
		"key", document.Key,
		"user_id", document.UserID,
		"pages", len(pages),
	)
	return nil
}

// GetByUserID returns all documents uploaded by the given user. The order is
// stable across repeated calls when no writes happen in between.
func (r *PostgresDocumentRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.Document, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, user_id, name, url, pages, created_at
		 FROM documents
		 WHERE user_id = $1
		 ORDER BY created_at, key`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	documents := make([]*domain.Document, 0)
	for rows.Next() {
		var doc domain.Document
		var pagesJSON []byte
		if err := rows.Scan(&doc.Key, &doc.UserID, &doc.Name, &doc.URL, &pagesJSON, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		if err := json.Unmarshal(pagesJSON, &doc.Pages); err != nil {
			return nil, fmt.Errorf("failed to unmarshal page text for %s: %w", doc.Key, err)
		}
		documents = append(documents, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document rows: %w", err)
	}

	return documents, nil
}

// Delete removes the metadata row for the given key. Deleting a key that has
// no row is not an error.
func (r *PostgresDocumentRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	r.logger.Info("Document deleted", "key", key)
	return nil
}
