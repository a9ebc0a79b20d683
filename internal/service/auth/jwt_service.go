package auth

import (
	"context"
	"time"
)

// JWTService issues and validates the bearer tokens that guard the board.
// The board has a single owner; the subject is informational only.
type JWTService interface {
	// GenerateToken creates a signed access token for subject using the
	// configured lifetime.
	GenerateToken(ctx context.Context, subject string) (string, error)

	// GenerateTokenWithLifetime creates a signed access token that expires
	// after lifetime instead of the configured default.
	GenerateTokenWithLifetime(ctx context.Context, subject string, lifetime time.Duration) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of a token.
type Claims struct {
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
