package auth

import (
	"time"
)

// NewTestJWTService creates a JWT service with an explicit secret, lifetime and
// clock so tests can mint tokens that are already expired or not yet issued.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
	}
}
