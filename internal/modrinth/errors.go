package modrinth

import (
	"errors"
	"fmt"
)

// Sentinel errors for Modrinth API operations.
var (
	// ErrProjectNotFound is returned when a project cannot be found.
	ErrProjectNotFound = errors.New("project not found")

	// ErrRateLimitExceeded is returned when the API rate limit is exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrInvalidResponse is returned when the API returns an invalid response.
	ErrInvalidResponse = errors.New("invalid API response")

	// ErrInvalidSearchQuery is returned when the search query is invalid.
	ErrInvalidSearchQuery = errors.New("invalid search query")
)

// QueryFailedError reports a registry call that did not produce a usable
// response: a transport failure, a non-2xx status or an undecodable body.
// Target is the project id or URL that was being queried.
type QueryFailedError struct {
	Target string
	Err    error
}

func (e *QueryFailedError) Error() string {
	return fmt.Sprintf("query %s failed: %v", e.Target, e.Err)
}

// Unwrap exposes the classified cause (ErrProjectNotFound, *APIError, ...).
func (e *QueryFailedError) Unwrap() error { return e.Err }

// APIError represents an API error response.
type APIError struct {
	ErrorMsg    string `json:"error"`
	Description string `json:"description"`
	StatusCode  int    `json:"-"`
}

// Error returns the error message.
func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.ErrorMsg, e.Description, e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.ErrorMsg, e.StatusCode)
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, errorMsg, description string) *APIError {
	return &APIError{
		ErrorMsg:    errorMsg,
		Description: description,
		StatusCode:  statusCode,
	}
}
