package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrDuplicate    = errors.New("duplicate record")
	ErrNotFound     = errors.New("record not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrOTPRejected  = errors.New("otp rejected")
	// ErrEnvelope marks a response whose JSON shape does not match the envelope contract.
	ErrEnvelope = errors.New("unexpected response envelope")
)

// APIError is a non-2xx answer from the tour-booking service.
// Message carries the server's own text so the dashboard can show it verbatim.
type APIError struct {
	Status  int
	Method  string
	Path    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is lets callers match status classes with errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrDuplicate:
		return e.Status == http.StatusConflict
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	}
	return false
}

// EnvelopeError describes which part of a response broke the envelope contract.
type EnvelopeError struct {
	Path   string
	Reason string
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrEnvelope, e.Path, e.Reason)
}

func (e *EnvelopeError) Unwrap() error {
	return ErrEnvelope
}

// newAPIError extracts the server message from common error body shapes.
func newAPIError(status int, method, path string, body []byte) *APIError {
	return &APIError{
		Status:  status,
		Method:  method,
		Path:    path,
		Message: extractMessage(status, body),
	}
}

func extractMessage(status int, body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, key := range []string{"message", "detail", "error"} {
			raw, ok := fields[key]
			if !ok {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") {
		return text
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}
