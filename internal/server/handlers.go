package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-cards/internal/cards"
	"github.com/jonathan/resume-cards/internal/db"
	"github.com/jonathan/resume-cards/internal/docjson"
	"github.com/jonathan/resume-cards/internal/extraction"
	"github.com/jonathan/resume-cards/internal/ingestion"
	"github.com/jonathan/resume-cards/internal/server/middleware"
	"github.com/jonathan/resume-cards/internal/types"
)

const maxUploadBytes = 4 << 20

// noDisplayableContentNote is returned when classification produces zero
// cards. That is a valid outcome, not an error.
const noDisplayableContentNote = "document has no displayable content"

// handleClassify classifies a JSON resume document sent as the request
// body and returns the ordered cards. Stateless, nothing is stored.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	built, err := cards.Classify(raw)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := types.CardsResponse{Cards: built}
	if len(built) == 0 {
		resp.Cards = []cards.Card{}
		resp.Note = noDisplayableContentNote
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleUploadDocument accepts a resume upload, normalizes it to a JSON
// document, classifies it, and stores both for the authenticated user.
// JSON content is stored as-is; HTML and plain text go through cleanup
// and model extraction first.
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req types.UploadDocumentRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	document, sourceText, err := s.resolveDocument(r, req.Content)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	built, err := cards.Classify(document)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	docID, err := s.db.SaveDocument(r.Context(), userID, req.Filename, sourceText, document)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save document")
		return
	}

	cardsJSON, err := json.Marshal(built)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to encode cards")
		return
	}
	if err := s.db.SaveCards(r.Context(), docID, cardsJSON); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save cards")
		return
	}

	resp := types.CardsResponse{DocumentID: docID, Cards: built}
	if len(built) == 0 {
		resp.Cards = []cards.Card{}
		resp.Note = noDisplayableContentNote
	}
	s.jsonResponse(w, http.StatusCreated, resp)
}

// resolveDocument turns uploaded content into a JSON document. Returns the
// document bytes and the source text when extraction was involved.
func (s *Server) resolveDocument(r *http.Request, content string) ([]byte, string, error) {
	// Already a JSON object: store it untouched so key order survives.
	if _, err := docjson.Parse([]byte(content)); err == nil {
		return []byte(content), "", nil
	}

	if s.apiKey == "" {
		return nil, "", &ErrExtractionUnavailable{}
	}

	text := content
	if ingestion.IsHTML(content) {
		extracted, err := ingestion.ExtractHTMLText(content)
		if err != nil {
			return nil, "", &ErrInvalidDocument{Reason: fmt.Sprintf("failed to parse HTML: %v", err)}
		}
		text = extracted
	}
	text = ingestion.CleanText(text)
	if strings.TrimSpace(text) == "" {
		return nil, "", &ErrInvalidDocument{Reason: "no usable text in upload"}
	}

	document, err := extraction.ExtractDocument(r.Context(), text, s.apiKey)
	if err != nil {
		return nil, "", fmt.Errorf("extraction failed: %w", err)
	}
	return document, text, nil
}

// handleListDocuments lists the authenticated user's documents.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	summaries, err := s.db.ListDocuments(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list documents")
		return
	}

	out := make([]types.DocumentSummaryResponse, 0, len(summaries))
	for _, d := range summaries {
		out = append(out, types.DocumentSummaryResponse{
			ID:        d.ID,
			Filename:  d.Filename,
			HasCards:  d.HasCards,
			CreatedAt: d.CreatedAt,
		})
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// handleGetDocument returns one document's stored JSON.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.ownedDocument(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, types.DocumentResponse{
		ID:        doc.ID,
		Filename:  doc.Filename,
		Document:  doc.Document,
		CreatedAt: doc.CreatedAt,
	})
}

// handleGetDocumentCards returns the stored cards for a document,
// reclassifying from the document when none are stored yet.
func (s *Server) handleGetDocumentCards(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.ownedDocument(w, r)
	if !ok {
		return
	}

	if doc.Cards != nil {
		var stored []cards.Card
		if err := json.Unmarshal(doc.Cards, &stored); err == nil {
			resp := types.CardsResponse{DocumentID: doc.ID, Cards: stored}
			if len(stored) == 0 {
				resp.Cards = []cards.Card{}
				resp.Note = noDisplayableContentNote
			}
			s.jsonResponse(w, http.StatusOK, resp)
			return
		}
	}

	built, err := cards.Classify(doc.Document)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "stored document is not classifiable")
		return
	}

	if cardsJSON, err := json.Marshal(built); err == nil {
		_ = s.db.SaveCards(r.Context(), doc.ID, cardsJSON)
	}

	resp := types.CardsResponse{DocumentID: doc.ID, Cards: built}
	if len(built) == 0 {
		resp.Cards = []cards.Card{}
		resp.Note = noDisplayableContentNote
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleDeleteDocument removes a document.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.ownedDocument(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteDocument(r.Context(), doc.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete document")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownedDocument loads the path's document and enforces that it belongs to
// the authenticated user. Writes the error response itself on failure.
// Foreign documents get the same 404 as missing ones.
func (s *Server) ownedDocument(w http.ResponseWriter, r *http.Request) (*db.Document, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid document id")
		return nil, false
	}

	doc, err := s.db.GetDocument(r.Context(), docID)
	if err != nil {
		notFound := &ErrDocumentNotFound{DocumentID: docID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return nil, false
	}
	if doc.UserID != userID {
		notFound := &ErrDocumentNotFound{DocumentID: docID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return nil, false
	}
	return doc, true
}
