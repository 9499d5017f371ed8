// Package runeclient implements the client-side fetch discipline for quote
// and search traffic: debounced input, a minimum interval between upstream
// attempts, one delayed retry on failure and last-request-wins delivery.
package runeclient

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"runes-gateway/internal/pkg/flow"
)

const (
	quoteDebounceInterval = 1500 * time.Millisecond
	quoteThrottleInterval = 3 * time.Second
	quoteRetryDelay       = 1 * time.Second
	quoteMaxAttempts      = 2
)

// QuoteParams mirrors the swap quote request.
type QuoteParams struct {
	BTCAmount string
	RuneName  string
	Address   string
	Sell      bool
}

// QuoteFunc performs the actual quote call, typically against the gateway's
// /api/swap/quote route.
type QuoteFunc[T any] func(ctx context.Context, params QuoteParams) (T, error)

// QuoteHandler receives the quote outcome. Superseded responses are dropped
// before reaching it, so the newest request's result is always the last
// delivered.
type QuoteHandler[T any] func(result T, err error)

// QuoteFetcher serializes quote fetching for a single selection: amount edits
// are debounced, attempts are spaced out, a failed attempt is retried once
// after a short delay and only the latest request's outcome is delivered.
type QuoteFetcher[T any] struct {
	fetch    QuoteFunc[T]
	handle   QuoteHandler[T]
	debounce *flow.Debouncer
	throttle *flow.Throttle
	seq      *flow.Sequencer
}

func NewQuoteFetcher[T any](fetch QuoteFunc[T], handle QuoteHandler[T]) *QuoteFetcher[T] {
	return &QuoteFetcher[T]{
		fetch:    fetch,
		handle:   handle,
		debounce: flow.NewDebouncer(quoteDebounceInterval),
		throttle: flow.NewThrottle(quoteThrottleInterval),
		seq:      flow.NewSequencer(),
	}
}

// Request schedules a quote fetch for params once the input has settled.
// A newer Request replaces a pending one.
func (f *QuoteFetcher[T]) Request(ctx context.Context, params QuoteParams) {
	f.debounce.Do(func() {
		f.run(ctx, params)
	})
}

// Cancel drops any pending fetch. In-flight requests are not interrupted;
// their results are discarded by the sequence guard once a newer request is
// issued.
func (f *QuoteFetcher[T]) Cancel() {
	f.debounce.Cancel()
}

func (f *QuoteFetcher[T]) run(ctx context.Context, params QuoteParams) {
	seq := f.seq.Next()

	if err := f.throttle.Wait(ctx); err != nil {
		return
	}
	if !f.seq.Current(seq) {
		return
	}

	result, err := backoff.Retry(ctx, func() (T, error) {
		return f.fetch(ctx, params)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(quoteRetryDelay)),
		backoff.WithMaxTries(quoteMaxAttempts),
	)

	if !f.seq.Current(seq) {
		return
	}

	if err != nil {
		f.handle(result, rewriteQuoteError(err))
		return
	}
	f.handle(result, nil)
}

// rewriteQuoteError replaces the common upstream failure texts with
// actionable guidance, leaving everything else untouched.
func rewriteQuoteError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate limit"):
		return &QuoteError{Message: "Rate limit exceeded. Please wait a moment before trying again.", Cause: err}
	case strings.Contains(msg, "expired"):
		return &QuoteError{Message: "Quote expired. Please request a fresh quote.", Cause: err}
	case strings.Contains(msg, "unavailable"):
		return &QuoteError{Message: "Service temporarily unavailable. Please try again shortly.", Cause: err}
	}
	return err
}

// QuoteError carries a user-presentable message while keeping the original
// failure reachable through Unwrap.
type QuoteError struct {
	Message string
	Cause   error
}

func (e *QuoteError) Error() string { return e.Message }

func (e *QuoteError) Unwrap() error { return e.Cause }
