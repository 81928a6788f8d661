package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnauthorized = errors.New("broker rejected the credentials")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrTransport    = errors.New("broker unreachable")
	ErrInvalidName  = errors.New("resource name is required")
)

// APIError is a non-2xx answer from the broker management API.
type APIError struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("broker %s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("broker %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Is lets callers match an APIError against the package sentinels with errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	}
	return false
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	return &APIError{
		StatusCode: status,
		Message:    brokerMessage(body),
		Method:     method,
		Path:       path,
	}
}

// brokerMessage pulls the human readable text out of an error body.
// The broker answers {"message": "..."}; anything else is returned trimmed.
func brokerMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

// StatusCode extracts the HTTP status of a broker failure, 0 when there was none.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
