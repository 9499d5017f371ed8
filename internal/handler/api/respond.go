package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"runes-gateway/internal/handler/httperr"
	"runes-gateway/internal/usecase"
)

// respondData wraps every success payload in the uniform {data: ...} envelope.
func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// abortValidation converts a binding failure into a 400 envelope with
// per-field detail. Validation failures never reach external calls.
func abortValidation(c *gin.Context, err error) {
	details := err.Error()

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fe.Field() + ": failed '" + fe.Tag() + "' validation"
		}
		details = strings.Join(fields, "; ")
	}

	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request parameters", details)
}

// abortUsecaseError maps a classified usecase error onto the HTTP taxonomy.
// The top-level message stays stable and user-presentable; the original error
// text lands in details.
func abortUsecaseError(c *gin.Context, err error, contextMessage string) {
	details := err.Error()

	switch {
	case errors.Is(err, usecase.ErrAuthRequired):
		httperr.AbortWithError(c, http.StatusUnauthorized, err,
			"Authentication required. Please sign in with your wallet.", details)
	case errors.Is(err, usecase.ErrServerConfig):
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Server configuration error", details)
	case errors.Is(err, usecase.ErrRateLimited):
		httperr.AbortWithError(c, http.StatusTooManyRequests, err,
			"Rate limit exceeded", details)
	case errors.Is(err, usecase.ErrQuoteExpired):
		httperr.AbortWithError(c, http.StatusGone, err,
			"Quote expired. Please request a fresh quote.", details)
	case errors.Is(err, usecase.ErrNoBorrowRanges):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			"No valid borrow ranges found for this rune", details)
	case errors.Is(err, usecase.ErrUpstreamNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, contextMessage, details)
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
			"Service temporarily unavailable. Please try again shortly.", details)
	case errors.Is(err, usecase.ErrUpstream):
		// Forwarded routes surface the upstream message/status unchanged
		// where available.
		if status, message, ok := usecase.UpstreamStatus(err); ok {
			httperr.AbortWithError(c, status, err, message, details)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, contextMessage, details)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, contextMessage, details)
	}
}
