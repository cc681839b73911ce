package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ynot/models"
)

var (
	// ErrAuthExpired means the stored token's exp claim is in the past.
	ErrAuthExpired = errors.New("session: token expired")
	// ErrMalformedToken means the stored token could not be decoded or
	// carries no exp claim.
	ErrMalformedToken = errors.New("session: malformed token")
)

var parser = jwt.NewParser()

// ParseClaims decodes the token payload without verifying its signature.
// The client cannot hold the signing key; the backend verifies every request.
func ParseClaims(token string) (*models.Claims, error) {
	claims := &models.Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing exp claim", ErrMalformedToken)
	}
	return claims, nil
}

// Validate returns nil when token decodes and has not expired at now. Only
// the registered claims are read, so unexpected shapes of custom claims do
// not invalidate the session.
func Validate(token string, now time.Time) error {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if claims.ExpiresAt == nil {
		return fmt.Errorf("%w: missing exp claim", ErrMalformedToken)
	}
	if claims.ExpiresAt.Time.Before(now) {
		return fmt.Errorf("%w at %s", ErrAuthExpired, claims.ExpiresAt.Time.Format(time.RFC3339))
	}
	return nil
}

// IsExpired reports whether token must be treated as expired at now.
// Undecodable tokens count as expired.
func IsExpired(token string, now time.Time) bool {
	return Validate(token, now) != nil
}
