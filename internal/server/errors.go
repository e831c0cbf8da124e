package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates the user was not found.
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrDocumentNotFound indicates the document was not found or belongs to
// a different user.
type ErrDocumentNotFound struct {
	DocumentID uuid.UUID
}

func (e *ErrDocumentNotFound) Error() string {
	return fmt.Sprintf("document not found: %s", e.DocumentID)
}

// ErrInvalidDocument indicates the uploaded content could not be turned
// into a JSON resume document.
type ErrInvalidDocument struct {
	Reason string
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("invalid document: %s", e.Reason)
}

// ErrExtractionUnavailable indicates non-JSON content was uploaded but no
// extraction model is configured.
type ErrExtractionUnavailable struct{}

func (e *ErrExtractionUnavailable) Error() string {
	return "extraction is not configured; upload a JSON document instead"
}

// HTTPStatus maps an error to the HTTP status code it should produce.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrDocumentNotFound:
		return http.StatusNotFound
	case *ErrInvalidDocument:
		return http.StatusBadRequest
	case *ErrExtractionUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
