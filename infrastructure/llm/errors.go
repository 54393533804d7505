package llm

import (
	"context"
	"errors"
	"fmt"
)

// Common errors returned by the client and providers.
var (
	// ErrEmptyAPIKey indicates that an API key was required but not provided.
	ErrEmptyAPIKey = errors.New("API key cannot be empty")
	// ErrEmptyResponse indicates that the endpoint returned an empty body.
	ErrEmptyResponse = errors.New("empty response from API")
	// ErrNoResponseChoice indicates that the response contained no choices.
	ErrNoResponseChoice = errors.New("no response choices returned")
)

// ErrorType classifies an endpoint failure for standardized handling.
type ErrorType int

const (
	// ErrorTypeUnknown indicates an error of an undetermined category.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeAuthentication indicates an invalid or rejected credential.
	ErrorTypeAuthentication
	// ErrorTypeRateLimit indicates that a rate limit has been exceeded.
	ErrorTypeRateLimit
	// ErrorTypeBadRequest indicates a malformed request or invalid parameters.
	ErrorTypeBadRequest
	// ErrorTypeNotFound indicates that a requested resource (e.g. a model) does not exist.
	ErrorTypeNotFound
	// ErrorTypeServerError indicates a problem on the endpoint's side.
	ErrorTypeServerError
	// ErrorTypeContentPolicy indicates the request was blocked by a content policy.
	ErrorTypeContentPolicy
	// ErrorTypeNetwork indicates a client-side network problem.
	ErrorTypeNetwork
	// ErrorTypeTimeout indicates that the request timed out.
	ErrorTypeTimeout
)

// ProviderError is the endpoint-failure class of the scoring engine:
// any transport, timeout, or non-success response from the inference
// service is normalized into this type and surfaced to the caller. It
// is never converted into a default score — that policy belongs to the
// parser, and only for malformed text in otherwise successful responses.
type ProviderError struct {
	// Type classifies the failure into a standard category.
	Type ErrorType
	// Provider identifies which provider produced the error.
	Provider string
	// StatusCode holds the HTTP status from the response, if applicable.
	StatusCode int
	// Message contains the user-facing message from the endpoint.
	Message string
	// WrappedError holds the original underlying error.
	WrappedError error
}

// Error returns a string representation of the ProviderError.
func (e *ProviderError) Error() string {
	base := fmt.Sprintf("%s error", e.Provider)
	if e.StatusCode > 0 {
		base += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}
	if ts := e.typeString(); ts != "" {
		base += fmt.Sprintf(" [%s]", ts)
	}
	if e.Message != "" {
		base += ": " + e.Message
	}
	if e.WrappedError != nil {
		base += fmt.Sprintf(": %v", e.WrappedError)
	}
	return base
}

// Unwrap returns the wrapped error for errors.Is / errors.As inspection.
func (e *ProviderError) Unwrap() error { return e.WrappedError }

// IsRetryable reports whether a caller-level retry could plausibly
// succeed. The client itself never retries.
func (e *ProviderError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeRateLimit, ErrorTypeServerError, ErrorTypeNetwork, ErrorTypeTimeout:
		return true
	default:
		return false
	}
}

func (e *ProviderError) typeString() string {
	switch e.Type {
	case ErrorTypeAuthentication:
		return "authentication"
	case ErrorTypeRateLimit:
		return "rate_limit"
	case ErrorTypeBadRequest:
		return "bad_request"
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeServerError:
		return "server_error"
	case ErrorTypeContentPolicy:
		return "content_policy"
	case ErrorTypeNetwork:
		return "network"
	case ErrorTypeTimeout:
		return "timeout"
	default:
		return ""
	}
}

// NewProviderError builds a standardized error from a provider-specific
// failure.
func NewProviderError(provider string, errType ErrorType, statusCode int, message string, wrapped error) *ProviderError {
	return &ProviderError{
		Type:         errType,
		Provider:     provider,
		StatusCode:   statusCode,
		Message:      message,
		WrappedError: wrapped,
	}
}

// ErrorClassifier normalizes provider-specific errors into ProviderError
// instances using HTTP status codes and context state.
type ErrorClassifier struct {
	// Provider is the name of the provider this classifier works for.
	Provider string
}

// ClassifyHTTPError maps an HTTP status code onto an ErrorType.
func (ec *ErrorClassifier) ClassifyHTTPError(statusCode int, message string, err error) *ProviderError {
	var errType ErrorType
	userMessage := message

	switch statusCode {
	case 401, 403:
		errType = ErrorTypeAuthentication
		userMessage = fmt.Sprintf("%s authentication failed", ec.Provider)
	case 429:
		errType = ErrorTypeRateLimit
		userMessage = fmt.Sprintf("%s rate limit exceeded", ec.Provider)
	case 400:
		errType = ErrorTypeBadRequest
	case 404:
		errType = ErrorTypeNotFound
	case 500, 502, 503, 504:
		errType = ErrorTypeServerError
	default:
		switch {
		case statusCode >= 400 && statusCode < 500:
			errType = ErrorTypeBadRequest
		case statusCode >= 500:
			errType = ErrorTypeServerError
		default:
			errType = ErrorTypeUnknown
		}
	}

	return NewProviderError(ec.Provider, errType, statusCode, userMessage, err)
}

// ClassifyContextError maps context cancellation and deadline errors.
func (ec *ErrorClassifier) ClassifyContextError(err error) *ProviderError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return NewProviderError(ec.Provider, ErrorTypeTimeout, 0, "context deadline exceeded", err)
	case errors.Is(err, context.Canceled):
		return NewProviderError(ec.Provider, ErrorTypeNetwork, 0, "request canceled", err)
	default:
		return NewProviderError(ec.Provider, ErrorTypeUnknown, 0, "", err)
	}
}

// IsEndpointError reports whether err is an endpoint failure surfaced by
// a provider, as opposed to a precondition or configuration error.
func IsEndpointError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
