package types

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/resume-cards/internal/cards"
)

// UploadDocumentRequest represents an upload of resume content. Content
// may be a structured JSON document, plain resume text, or an HTML
// export; the server detects which and runs extraction when needed.
type UploadDocumentRequest struct {
	Filename string `json:"filename,omitempty"`
	Content  string `json:"content" validate:"required"`
}

// Validate validates the UploadDocumentRequest using the validator.
func (r *UploadDocumentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// DocumentResponse describes one stored document.
type DocumentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Filename  string          `json:"filename,omitempty"`
	Document  json.RawMessage `json:"document,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// DocumentSummaryResponse is a listing row.
type DocumentSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename,omitempty"`
	HasCards  bool      `json:"has_cards"`
	CreatedAt time.Time `json:"created_at"`
}

// CardsResponse carries classification output. Note is set to a neutral
// message when classification produced no cards, which is a normal
// outcome for an all-absent document.
type CardsResponse struct {
	DocumentID uuid.UUID    `json:"document_id,omitempty"`
	Cards      []cards.Card `json:"cards"`
	Note       string       `json:"note,omitempty"`
}
