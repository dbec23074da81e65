// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vitrina/config"
	"vitrina/internal/domain/service"
)

// jwtService verifies provider-issued access tokens with the shared HS256
// secret. Tokens are minted by the hosted auth provider, never here.
// Construction succeeds without a secret so a half-configured deployment
// still boots; the session gate decides what an unverifiable session means.
type jwtService struct {
	secret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) service.TokenService {
	return &jwtService{secret: cfg.Auth.JWTSecret}
}

// ValidateAccessToken checks signature and expiry, then extracts the caller
// identity from the standard claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.SessionClaims, error) {
	if s.secret == "" {
		return nil, errors.New("no jwt secret configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("token has no subject")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("token subject is not a user id")
	}

	email, _ := claims["email"].(string)

	return &service.SessionClaims{
		UserID: userID,
		Email:  email,
	}, nil
}
