package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-cards/internal/cards"
	"github.com/jonathan/resume-cards/internal/config"
	"github.com/jonathan/resume-cards/internal/db"
	"github.com/jonathan/resume-cards/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeDocumentStore is an in-memory DocumentStore for handler tests.
type fakeDocumentStore struct {
	docs map[uuid.UUID]*db.Document
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{docs: make(map[uuid.UUID]*db.Document)}
}

func (f *fakeDocumentStore) SaveDocument(_ context.Context, userID uuid.UUID, filename, sourceText string, document []byte) (uuid.UUID, error) {
	id := uuid.New()
	f.docs[id] = &db.Document{
		ID:         id,
		UserID:     userID,
		Filename:   filename,
		SourceText: sourceText,
		Document:   document,
		CreatedAt:  time.Now(),
	}
	return id, nil
}

func (f *fakeDocumentStore) SaveCards(_ context.Context, documentID uuid.UUID, cards []byte) error {
	doc, ok := f.docs[documentID]
	if !ok {
		return db.ErrNotFound
	}
	doc.Cards = cards
	return nil
}

func (f *fakeDocumentStore) GetDocument(_ context.Context, id uuid.UUID) (*db.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return doc, nil
}

func (f *fakeDocumentStore) ListDocuments(_ context.Context, userID uuid.UUID) ([]db.DocumentSummary, error) {
	var out []db.DocumentSummary
	for _, d := range f.docs {
		if d.UserID == userID {
			out = append(out, db.DocumentSummary{
				ID:        d.ID,
				Filename:  d.Filename,
				HasCards:  d.Cards != nil,
				CreatedAt: d.CreatedAt,
			})
		}
	}
	return out, nil
}

func (f *fakeDocumentStore) DeleteDocument(_ context.Context, id uuid.UUID) error {
	if _, ok := f.docs[id]; !ok {
		return db.ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

// newTestServer builds a server around in-memory stores, with auth wired
// but no rate limiting or database.
func newTestServer(store DocumentStore) *Server {
	jwtService := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing",
		ExpirationHours: 1,
	})
	userService := NewUserService(newFakeUserStore(), &config.PasswordConfig{BcryptCost: bcrypt.MinCost})

	return &Server{
		db:          store,
		jwtService:  jwtService,
		userService: userService,
		authHandler: NewAuthHandler(userService, jwtService),
	}
}

func authedRequest(t *testing.T, s *Server, method, path string, body []byte) *http.Request {
	t.Helper()

	token, err := s.jwtService.GenerateToken(uuid.New())
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func requestForUser(t *testing.T, s *Server, userID uuid.UUID, method, path string, body []byte) *http.Request {
	t.Helper()

	token, err := s.jwtService.GenerateToken(userID)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeCardsResponse(t *testing.T, rec *httptest.ResponseRecorder) types.CardsResponse {
	t.Helper()

	var resp types.CardsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleClassify(t *testing.T) {
	s := newTestServer(newFakeDocumentStore())

	body := []byte(`{
		"personalInfo": {"name": "Jane Doe", "email": "jane@example.com"},
		"skills": ["Go", "SQL"]
	}`)
	req := httptest.NewRequest(http.MethodPost, "/classify", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCardsResponse(t, rec)
	require.Len(t, resp.Cards, 2)
	assert.Equal(t, cards.KindPersonal, resp.Cards[0].Kind)
	assert.Equal(t, cards.KindSkills, resp.Cards[1].Kind)
	assert.Empty(t, resp.Note)
}

func TestHandleClassify_InvalidJSON(t *testing.T) {
	s := newTestServer(newFakeDocumentStore())

	req := httptest.NewRequest(http.MethodPost, "/classify", bytes.NewReader([]byte(`{broken`)))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleClassify_EmptyDocument(t *testing.T) {
	s := newTestServer(newFakeDocumentStore())

	req := httptest.NewRequest(http.MethodPost, "/classify", bytes.NewReader([]byte(`{"name": ""}`)))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCardsResponse(t, rec)
	assert.Empty(t, resp.Cards)
	assert.Equal(t, noDisplayableContentNote, resp.Note)
}

func TestHandleUploadDocument_JSONContent(t *testing.T) {
	store := newFakeDocumentStore()
	s := newTestServer(store)

	upload := types.UploadDocumentRequest{
		Filename: "resume.json",
		Content:  `{"personalInfo": {"name": "Jane"}, "skills": ["Go"]}`,
	}
	body, err := json.Marshal(upload)
	require.NoError(t, err)

	req := authedRequest(t, s, http.MethodPost, "/documents", body)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeCardsResponse(t, rec)
	assert.NotEqual(t, uuid.Nil, resp.DocumentID)
	assert.Len(t, resp.Cards, 2)

	stored := store.docs[resp.DocumentID]
	require.NotNil(t, stored)
	assert.Equal(t, "resume.json", stored.Filename)
	assert.NotNil(t, stored.Cards)
	assert.Empty(t, stored.SourceText, "direct JSON uploads keep no source text")
}

func TestHandleUploadDocument_TextWithoutAPIKey(t *testing.T) {
	s := newTestServer(newFakeDocumentStore())

	upload := types.UploadDocumentRequest{Content: "Jane Doe\nSoftware Engineer at Acme"}
	body, err := json.Marshal(upload)
	require.NoError(t, err)

	req := authedRequest(t, s, http.MethodPost, "/documents", body)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleUploadDocument_MissingContent(t *testing.T) {
	s := newTestServer(newFakeDocumentStore())

	req := authedRequest(t, s, http.MethodPost, "/documents", []byte(`{"filename": "x.json"}`))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUploadDocument_Unauthenticated(t *testing.T) {
	s := newTestServer(newFakeDocumentStore())

	req := httptest.NewRequest(http.MethodPost, "/documents", bytes.NewReader([]byte(`{"content": "{}"}`)))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleListDocuments(t *testing.T) {
	store := newFakeDocumentStore()
	s := newTestServer(store)
	userID := uuid.New()

	_, err := store.SaveDocument(context.Background(), userID, "mine.json", "", []byte(`{"skills": ["Go"]}`))
	require.NoError(t, err)
	_, err = store.SaveDocument(context.Background(), uuid.New(), "theirs.json", "", []byte(`{}`))
	require.NoError(t, err)

	req := requestForUser(t, s, userID, http.MethodGet, "/documents", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out []types.DocumentSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "mine.json", out[0].Filename)
	assert.False(t, out[0].HasCards)
}

func TestHandleGetDocument(t *testing.T) {
	store := newFakeDocumentStore()
	s := newTestServer(store)
	userID := uuid.New()

	docID, err := store.SaveDocument(context.Background(), userID, "resume.json", "", []byte(`{"skills": ["Go"]}`))
	require.NoError(t, err)

	req := requestForUser(t, s, userID, http.MethodGet, "/documents/"+docID.String(), nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.DocumentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, docID, resp.ID)
	assert.JSONEq(t, `{"skills": ["Go"]}`, string(resp.Document))
}

func TestHandleGetDocument_OtherUsersDocumentIsNotFound(t *testing.T) {
	store := newFakeDocumentStore()
	s := newTestServer(store)

	docID, err := store.SaveDocument(context.Background(), uuid.New(), "theirs.json", "", []byte(`{}`))
	require.NoError(t, err)

	req := requestForUser(t, s, uuid.New(), http.MethodGet, "/documents/"+docID.String(), nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetDocument_BadID(t *testing.T) {
	s := newTestServer(newFakeDocumentStore())

	req := authedRequest(t, s, http.MethodGet, "/documents/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetDocumentCards_ClassifiesOnDemand(t *testing.T) {
	store := newFakeDocumentStore()
	s := newTestServer(store)
	userID := uuid.New()

	// Saved without cards, as if classification never ran
	docID, err := store.SaveDocument(context.Background(), userID, "resume.json", "", []byte(`{"skills": ["Go", "SQL"]}`))
	require.NoError(t, err)

	req := requestForUser(t, s, userID, http.MethodGet, fmt.Sprintf("/documents/%s/cards", docID), nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCardsResponse(t, rec)
	require.Len(t, resp.Cards, 1)
	assert.Equal(t, cards.KindSkills, resp.Cards[0].Kind)

	assert.NotNil(t, store.docs[docID].Cards, "on-demand classification is persisted")
}

func TestHandleGetDocumentCards_ReturnsStored(t *testing.T) {
	store := newFakeDocumentStore()
	s := newTestServer(store)
	userID := uuid.New()

	docID, err := store.SaveDocument(context.Background(), userID, "resume.json", "", []byte(`{"skills": ["Go"]}`))
	require.NoError(t, err)
	storedCards := []byte(`[{"kind": "skills", "title": "Skills", "width": "regular", "entries": ["Go"]}]`)
	require.NoError(t, store.SaveCards(context.Background(), docID, storedCards))

	req := requestForUser(t, s, userID, http.MethodGet, fmt.Sprintf("/documents/%s/cards", docID), nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCardsResponse(t, rec)
	require.Len(t, resp.Cards, 1)
	assert.Equal(t, "Skills", resp.Cards[0].Title)
}

func TestHandleDeleteDocument(t *testing.T) {
	store := newFakeDocumentStore()
	s := newTestServer(store)
	userID := uuid.New()

	docID, err := store.SaveDocument(context.Background(), userID, "resume.json", "", []byte(`{}`))
	require.NoError(t, err)

	req := requestForUser(t, s, userID, http.MethodDelete, "/documents/"+docID.String(), nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, store.docs)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(newFakeDocumentStore())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
