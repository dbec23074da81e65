package usecase

import "context"

// AuthSession is the session material handed to the cookie layer after a
// successful magic-link exchange.
type AuthSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// AuthUsecase handles the callback leg of the hosted authentication flow.
type AuthUsecase interface {
	// ExchangeCode trades a magic-link callback code for a session.
	ExchangeCode(ctx context.Context, code string) (*AuthSession, error)
}
