package fetch

import "fmt"

// FetchError covers transport-level failures: connection errors, timeouts,
// and server-acknowledged rejections (non-2xx). Timeout carries the
// distinguishing label so callers can branch on it.
type FetchError struct {
	URL      string
	Status   int // 0 when the request never completed
	Attempts int
	Timeout  bool
	Err      error
}

func (e *FetchError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("menu fetch timeout after %d attempt(s): %s", e.Attempts, e.URL)
	case e.Status != 0:
		return fmt.Sprintf("menu fetch failed: HTTP %d from %s", e.Status, e.URL)
	default:
		return fmt.Sprintf("menu fetch failed after %d attempt(s): %s: %v", e.Attempts, e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means the body was not valid JSON. The declared content type is
// informational only; decoding is what decides.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("menu payload is not valid JSON from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
