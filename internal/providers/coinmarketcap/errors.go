package coinmarketcap

import (
	"fmt"
)

// ErrorKind classifies a provider failure so callers can map it onto their
// own error surface without inspecting HTTP codes.
type ErrorKind string

const (
	// ErrorKindAuth means the API key was rejected
	ErrorKindAuth ErrorKind = "auth"
	// ErrorKindForbidden means the API plan does not cover the endpoint
	ErrorKindForbidden ErrorKind = "forbidden"
	// ErrorKindRateLimited means the provider throttled the request
	ErrorKindRateLimited ErrorKind = "rate_limited"
	// ErrorKindProvider covers every other provider-side failure
	ErrorKindProvider ErrorKind = "provider"
)

// APIError is a failed provider call, carrying the classification and the
// provider's own error message when one was present.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (status %d): %s", PROVIDER_NAME, e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s (status %d)", PROVIDER_NAME, e.Kind, e.StatusCode)
}

func kindForStatus(statusCode int) ErrorKind {
	switch statusCode {
	case 401:
		return ErrorKindAuth
	case 403:
		return ErrorKindForbidden
	case 429:
		return ErrorKindRateLimited
	default:
		return ErrorKindProvider
	}
}
