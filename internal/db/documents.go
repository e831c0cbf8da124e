package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveDocument stores an uploaded document and returns its ID.
func (db *DB) SaveDocument(ctx context.Context, userID uuid.UUID, filename, sourceText string, document []byte) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO documents (user_id, filename, source_text, document)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, filename, sourceText, document,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save document: %w", err)
	}
	return id, nil
}

// SaveCards stores the classification output for a document.
func (db *DB) SaveCards(ctx context.Context, documentID uuid.UUID, cards []byte) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE documents SET cards = $1 WHERE id = $2`,
		cards, documentID,
	)
	if err != nil {
		return fmt.Errorf("failed to save cards: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetDocument fetches one document with its payloads.
func (db *DB) GetDocument(ctx context.Context, id uuid.UUID) (*Document, error) {
	var d Document
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, filename, source_text, document, cards, created_at
		 FROM documents WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.UserID, &d.Filename, &d.SourceText, &d.Document, &d.Cards, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &d, nil
}

// ListDocuments returns summaries of a user's documents, newest first.
func (db *DB) ListDocuments(ctx context.Context, userID uuid.UUID) ([]DocumentSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, cards IS NOT NULL, created_at
		 FROM documents WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var out []DocumentSummary
	for rows.Next() {
		var s DocumentSummary
		if err := rows.Scan(&s.ID, &s.Filename, &s.HasCards, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document rows: %w", err)
	}
	return out, nil
}

// DeleteDocument removes a document.
func (db *DB) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
