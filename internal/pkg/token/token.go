package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Inspect reads the subject and expiry out of a connect token without
// verifying the signature; verification is the realtime broker's job, the
// sync service only needs to know who it runs for and when to refresh.
func Inspect(tokenString string) (string, time.Time, error) {
	claims := jwt.RegisteredClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to parse connect token: %w", err)
	}

	if claims.Subject == "" {
		return "", time.Time{}, fmt.Errorf("connect token has no subject")
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return claims.Subject, expiresAt, nil
}
