package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates a transport-level failure: the request
	// never produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")
)

// BackendError is a non-2xx response from the backend. Detail carries
// the message extracted from the conventional {"detail": "..."} body,
// falling back to the HTTP status text when the body has none.
type BackendError struct {
	Status int
	Detail string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error: %d %s", e.Status, e.Detail)
}
