package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Document represents an uploaded resume document: the source text it was
// extracted from (empty for direct JSON uploads), the structured document
// JSON, and the classified cards once classification has run.
type Document struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Filename   string
	SourceText string
	Document   []byte // raw StructuredDocument JSON
	Cards      []byte // classified cards JSON, nil until classified
	CreatedAt  time.Time
}

// DocumentSummary is a listing row without the JSON payloads.
type DocumentSummary struct {
	ID        uuid.UUID
	Filename  string
	HasCards  bool
	CreatedAt time.Time
}
