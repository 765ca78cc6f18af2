package validation

import (
	"encoding/json"
	"fmt"
)

// ErrPermission indicates the endpoint answered with an {"error": ...}
// body, which the admin site uses for unauthenticated requests.
type ErrPermission struct {
	Message string
}

func (e *ErrPermission) Error() string {
	return fmt.Sprintf("validation endpoint refused request: %s", e.Message)
}

// ErrInvalidPayload indicates a response that does not conform to the
// expected schema version.
type ErrInvalidPayload struct {
	Schema  string
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid %s payload: %v", e.Schema, e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }

// ErrUnavailable indicates a transport failure or non-2xx status.
type ErrUnavailable struct {
	StatusCode int // 0 for transport errors
	Err        error
}

func (e *ErrUnavailable) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("validation endpoint unavailable (HTTP %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("validation endpoint unavailable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }
