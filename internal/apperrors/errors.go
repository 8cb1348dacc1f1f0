package apperrors

import "errors"

// Configuration errors are detected before any network call and are never retried.
var (
	// ErrMissingConfiguration indicates that one or more required upstream
	// settings (access token or endpoint URLs) are not set.
	ErrMissingConfiguration = errors.New("missing environment variables")

	// ErrInvalidAccessToken indicates that the encrypted access token could not be decrypted.
	ErrInvalidAccessToken = errors.New("invalid encrypted access token")
)

// Upstream errors represent failures reported by the auth, holdings or performance services.
var (
	// ErrAuthFailed indicates that the auth endpoint answered with a non-success status.
	ErrAuthFailed = errors.New("failed to fetch auth token")

	// ErrMissingAuthToken indicates a successful auth response without an authToken field.
	ErrMissingAuthToken = errors.New("auth response did not contain an auth token")

	// ErrUpstreamStatus indicates that a data endpoint answered with a non-success status.
	ErrUpstreamStatus = errors.New("upstream returned non-success status")
)

// Operation failure errors.
var (
	ErrFailedToRetrieveHoldings    = errors.New("failed to retrieve holdings")
	ErrFailedToRetrievePerformance = errors.New("failed to retrieve performance")

	// ErrRateLimited indicates the caller exceeded the configured request rate.
	ErrRateLimited = errors.New("too many requests")
)
