package gateway

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two upstream statuses that carry a fixed meaning.
var (
	// ErrInvalidDate corresponds to an upstream 400.
	ErrInvalidDate = errors.New("Invalid date format. Use YYYY-MM-DD")

	// ErrAuth corresponds to an upstream 401. Not user-actionable; callers
	// surface it as a generic failure.
	ErrAuth = errors.New("Invalid API key")
)

// UpstreamError reports any other non-2xx status from the record endpoint.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gateway: upstream returned status %d", e.Status)
}

// NetworkError reports a transport-level failure where no response was
// received at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("gateway: request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
