package service

import "github.com/google/uuid"

// SessionClaims is the identity extracted from a provider-issued token.
type SessionClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenService verifies access tokens issued by the hosted auth provider.
// Verification is local (shared HS256 secret); no network round trip.
type TokenService interface {
	// ValidateAccessToken checks the token and returns the caller identity.
	ValidateAccessToken(tokenString string) (*SessionClaims, error)
}
