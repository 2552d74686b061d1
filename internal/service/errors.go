package service

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest marks requests rejected before any provider call
var ErrInvalidRequest = errors.New("invalid request")

// ProviderError reports a failure of an upstream collaborator: the text
// generation provider or the RAG server. Transient errors were retried before
// being surfaced.
type ProviderError struct {
	Op        string
	Transient bool
	Err       error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsProviderError reports whether err wraps a ProviderError
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

func invalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
