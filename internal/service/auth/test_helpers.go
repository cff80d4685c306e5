package auth

import "time"

// NewTestJWTService creates a JWT service with explicit parameters for
// use in tests. The timeFunc parameter lets tests control the clock; pass
// nil to use time.Now.
func NewTestJWTService(
	secret string,
	tokenLifetime time.Duration,
	refreshTokenLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:           []byte(secret),
		tokenLifetime:        tokenLifetime,
		refreshTokenLifetime: refreshTokenLifetime,
		timeFunc:             timeFunc,
		clockSkew:            2 * time.Minute,
	}
}
