package dispatcher

import (
	"errors"
	"fmt"
)

var (
	ErrRuntimeUnavailable   = errors.New("specialist runtime unavailable")
	ErrNoBackendURL         = errors.New("agent has no backend url")
	ErrUnreadableReply      = errors.New("unreadable reply")
	ErrMissingResponseField = errors.New("backend reply has no response field")
	ErrNoGenerator          = errors.New("no foundation model configured")
)

// StatusError is a non-2xx answer from a runtime or backend.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}
