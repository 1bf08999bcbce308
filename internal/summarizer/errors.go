package summarizer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyContent means the backend answered but no text could be extracted.
	ErrEmptyContent = errors.New("empty content")
	// ErrInvalidRequest means the client request could not be decoded.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnexpected marks faults recovered from normalization or prompt building.
	ErrUnexpected = errors.New("unexpected fault")
)

// TransportError means the backend could not be reached or did not answer in time.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError means the backend answered with a non-success status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend status failure (code = %d): %s", e.Code, e.Body)
}

// FailureKind is the category every failure is reduced to.
type FailureKind int

const (
	KindUnexpected FailureKind = iota
	KindTransport
	KindBackendStatus
	KindEmptyContent
)

func (k FailureKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindBackendStatus:
		return "backend_status"
	case KindEmptyContent:
		return "empty_content"
	default:
		return "unexpected"
	}
}

// Classify reduces any error to its FailureKind. Unknown errors are
// KindUnexpected.
func Classify(err error) FailureKind {
	var transportErr *TransportError
	var statusErr *StatusError

	switch {
	case errors.As(err, &transportErr):
		return KindTransport
	case errors.As(err, &statusErr):
		return KindBackendStatus
	case errors.Is(err, ErrEmptyContent):
		return KindEmptyContent
	default:
		return KindUnexpected
	}
}
