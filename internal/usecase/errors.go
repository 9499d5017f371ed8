package usecase

import "errors"

// Sentinel errors shared across the orchestration usecases. Handlers translate
// these into the HTTP error taxonomy; upstream message/status stay reachable
// through the wrapped chain for the details field.
var (
	// Auth errors
	ErrAuthRequired = errors.New("authentication required")
	ErrAuthFailed   = errors.New("authentication failed")

	// Upstream errors
	ErrUpstreamNotFound    = errors.New("not found upstream")
	ErrQuoteExpired        = errors.New("quote expired")
	ErrRateLimited         = errors.New("rate limited")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstream            = errors.New("upstream request failed")

	// Configuration errors
	ErrServerConfig = errors.New("server configuration error")

	// Borrow errors
	ErrNoBorrowRanges = errors.New("no borrow ranges available")

	// Cache errors
	ErrCacheEmpty = errors.New("cache empty")
)
