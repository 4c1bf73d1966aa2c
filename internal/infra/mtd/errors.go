package mtd

import "fmt"

// UpstreamError reports a non-200 answer from the schedule feed.
type UpstreamError struct {
	StatusCode int
	Method     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("schedule feed %s returned status %d", e.Method, e.StatusCode)
}

// NetworkError reports a transport-level failure (timeout, connection refused)
// while talking to the schedule feed.
type NetworkError struct {
	Method string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("schedule feed %s unreachable: %v", e.Method, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
