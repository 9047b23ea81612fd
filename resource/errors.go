package resource

import (
	"errors"
	"fmt"
)

// ErrRequest matches every failed backend call, transport or HTTP status.
var ErrRequest = errors.New("request failed")

// ErrNoRelation is returned by Select when the endpoint has no relation path.
var ErrNoRelation = errors.New("entity has no relation to select")

// ErrNotFound is returned by Select when the API answers null.
var ErrNotFound = errors.New("record not found")

// StatusError is a non-2xx answer from the API. The body is kept for logs only.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrRequest
}

type transportError struct {
	method string
	path   string
	err    error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.method, e.path, e.err)
}

func (e *transportError) Unwrap() []error {
	return []error{ErrRequest, e.err}
}
