package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the expiration of a backend token without verifying it.
// The backend token is opaque to the relay: the signing key is unknown, and a token
// that is not a JWT simply has no known expiry. The result is only used for logging,
// staleness is still detected by the backend denying a call.
func TokenExpiry(tokenString string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
