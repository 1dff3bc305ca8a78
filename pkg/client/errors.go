package client

import (
	"errors"
	"fmt"
)

// HTTPError represents a non-2xx HTTP response from the API.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// SessionExpiredError is returned when an authenticated request is rejected
// with 401/403 while a token was attached. It means the stored session is no
// longer valid. The HTTP layer only reports it; clearing the persisted
// session and returning to the login view is the caller's job.
type SessionExpiredError struct {
	StatusCode int
}

func (e *SessionExpiredError) Error() string {
	return "session expired, please log in again"
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

// IsSessionExpired returns true if err (or any wrapped error) is a SessionExpiredError.
func IsSessionExpired(err error) bool {
	var expErr *SessionExpiredError
	return errors.As(err, &expErr)
}
