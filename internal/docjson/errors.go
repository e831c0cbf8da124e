package docjson

import "fmt"

// ParseError represents an error parsing raw document bytes
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("document parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
