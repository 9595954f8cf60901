package repository

import "errors"

// Sentinel errors for Todoist API failures. Each maps to a distinct,
// user-actionable message at the delivery layer and must never be
// collapsed into one generic failure.
var (
	// ErrAuthentication indicates an invalid or insufficient API token (401/403)
	ErrAuthentication = errors.New("todoist authentication failed")

	// ErrValidation indicates invalid request data (400)
	ErrValidation = errors.New("todoist rejected the request data")

	// ErrNotFound indicates the resource no longer exists (404)
	ErrNotFound = errors.New("todoist resource not found")

	// ErrRateLimit indicates the rate limit held even after retries (429)
	ErrRateLimit = errors.New("todoist rate limit exceeded")

	// ErrTimeout indicates the request exceeded the client timeout
	ErrTimeout = errors.New("todoist request timed out")

	// ErrConnection indicates the API could not be reached
	ErrConnection = errors.New("unable to connect to todoist")

	// ErrService indicates any other API failure
	ErrService = errors.New("todoist service error")
)
