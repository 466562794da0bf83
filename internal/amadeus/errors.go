package amadeus

import "fmt"

// apiError is a non-2xx provider response with whatever detail text the
// error envelope carried.
type apiError struct {
	StatusCode int
	Detail     string
}

func (e *apiError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("provider returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("provider returned %d", e.StatusCode)
}

// AuthError means the token exchange failed; every subsequent call fails
// until a retry succeeds.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return "failed to authenticate with flight provider: " + e.Err.Error()
}

func (e *AuthError) Unwrap() error { return e.Err }

// LookupError wraps a failed location search. Callers swallow it: the user
// sees an empty suggestion list, never the error.
type LookupError struct {
	Keyword string
	Err     error
}

func (e *LookupError) Error() string {
	return "location lookup for " + e.Keyword + " failed: " + e.Err.Error()
}

func (e *LookupError) Unwrap() error { return e.Err }

// SearchError wraps a failed flight search. Message is display-ready.
type SearchError struct {
	Detail string
	Err    error
}

const genericSearchFailure = "Failed to search flights"

func (e *SearchError) Error() string {
	if e.Err != nil {
		return "flight search failed: " + e.Err.Error()
	}
	return "flight search failed: " + e.Detail
}

func (e *SearchError) Unwrap() error { return e.Err }

// Message is what the user sees; falls back to generic text when the
// provider gave no structured detail.
func (e *SearchError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return genericSearchFailure
}

func newSearchError(err error) *SearchError {
	if apiErr, ok := err.(*apiError); ok && apiErr.Detail != "" {
		return &SearchError{Detail: apiErr.Detail, Err: err}
	}
	return &SearchError{Err: err}
}
