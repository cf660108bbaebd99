package catalog

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport or malformed-response failures talking to the
// catalog. Callers own retry policy; nothing here retries beyond the transport.
var ErrUnavailable = errors.New("catalog unavailable")

// StatusError captures non-2xx HTTP responses from the catalog.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Body == "" {
		return fmt.Sprintf("%s request failed: status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s request failed: status %d: %s", e.Operation, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnavailable
}
