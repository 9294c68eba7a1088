package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry is the decoded expiry claim of an access token. A token that cannot
// be decoded, or that carries no exp claim, is Malformed; callers treat it
// exactly like an expired token whose refresh failed.
type Expiry struct {
	At        time.Time
	Malformed bool
}

// DecodeExpiry extracts the exp claim without verifying the signature. The
// client holds no signing key; the claim is used only to schedule refreshes,
// never for authorization decisions. Decoding failure is a value, not a
// panic.
func DecodeExpiry(access string) Expiry {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return Expiry{Malformed: true}
	}
	if claims.ExpiresAt == nil {
		return Expiry{Malformed: true}
	}
	return Expiry{At: claims.ExpiresAt.Time}
}

// ExpiredAt reports whether the token should be considered expired at the
// given moment. Malformed tokens are always expired.
func (e Expiry) ExpiredAt(now time.Time) bool {
	return e.Malformed || !now.Before(e.At)
}
