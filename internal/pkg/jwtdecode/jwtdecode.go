// Package jwtdecode extracts claims from bearer tokens issued by external
// services without verifying their signature. Verification is the issuer's
// responsibility; we only need the expiry to know when to stop using a token.
package jwtdecode

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"runes-gateway/internal/pkg/errs"
)

var ErrMalformedToken = errs.New("malformed bearer token")

// Expiry returns the "exp" claim of a three-segment dot-delimited token.
// Returns (nil, nil) when the token is well-formed but carries no expiry.
// Never panics; malformed input yields ErrMalformedToken.
func Expiry(tokenString string) (*time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errs.Mark(err, ErrMalformedToken)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedToken)
	}
	if exp == nil {
		return nil, nil
	}

	t := exp.Time
	return &t, nil
}
