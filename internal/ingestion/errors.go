package ingestion

import "fmt"

// HTMLError represents an error extracting text from an HTML upload
type HTMLError struct {
	Message string
	Cause   error
}

func (e *HTMLError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("html extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("html extraction error: %s", e.Message)
}

func (e *HTMLError) Unwrap() error {
	return e.Cause
}
