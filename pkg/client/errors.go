package client

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus matches any StatusError via errors.Is.
var ErrUnexpectedStatus = errors.New("client: unexpected status")

// StatusError reports a non-2xx response.
type StatusError struct {
	Op         string
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("client: %s: unexpected status %s", e.Op, e.Status)
	}
	return fmt.Sprintf("client: %s: unexpected status %s: %s", e.Op, e.Status, e.Body)
}

// Is reports whether target is ErrUnexpectedStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
