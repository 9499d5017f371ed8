package usecase

import (
	"errors"
	"strings"

	"runes-gateway/internal/client/rest"
	"runes-gateway/internal/pkg/errs"
)

// classifyUpstream maps a raw external-client error onto the sentinel
// taxonomy. The original error stays in the chain, so handlers can still
// reach the upstream status and message for the details field.
func classifyUpstream(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, rest.ErrNotConfigured) {
		return errs.Mark(err, ErrServerConfig)
	}

	var apiErr *rest.APIError
	if !errors.As(err, &apiErr) {
		return errs.Mark(err, ErrUpstream)
	}

	switch {
	case apiErr.NonJSON:
		return errs.Mark(err, ErrUpstreamUnavailable)
	case apiErr.Status == 429 || containsFold(apiErr.Message, "rate limit"):
		return errs.Mark(err, ErrRateLimited)
	case apiErr.Status == 410 || containsFold(apiErr.Message, "expired"):
		return errs.Mark(err, ErrQuoteExpired)
	case apiErr.Status == 404 || containsFold(apiErr.Message, "no liquidity") || containsFold(apiErr.Message, "liquidity unavailable"):
		return errs.Mark(err, ErrUpstreamNotFound)
	case apiErr.Status == 401 || apiErr.Status == 403:
		return errs.Mark(err, ErrAuthRequired)
	default:
		return errs.Mark(err, ErrUpstream)
	}
}

// UpstreamStatus extracts the upstream HTTP status and message from a
// classified error, for routes that forward upstream failures verbatim.
func UpstreamStatus(err error) (int, string, bool) {
	var apiErr *rest.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Message, true
	}
	return 0, "", false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
