package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and verifying identity tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT carrying the username.
	// Returns ErrMissingUsername if username is empty.
	GenerateToken(ctx context.Context, username string) (string, error)

	// ValidateToken verifies the signature and expiry of tokenString and
	// extracts the claims. Returns ErrMissingToken for an empty string,
	// ErrExpiredToken once the expiry has passed and ErrInvalidToken for
	// anything else that fails verification.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the identity carried by a verified token.
type Claims struct {
	// Username is the identity the token was issued for.
	Username string `json:"username"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
