package usecase

import "fmt"

// InvalidStatusError rejects a status value outside the closed vocabulary.
// The stored status is left untouched.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status %q", e.Value)
}

func IsInvalidStatus(err error) bool {
	_, ok := err.(*InvalidStatusError)
	return ok
}

// UpstreamError wraps a failure talking to an external dependency
// (analytics provider, store). Callers degrade to an explicit error state
// instead of rendering partial data.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: fetch failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func IsUpstreamError(err error) bool {
	_, ok := err.(*UpstreamError)
	return ok
}
