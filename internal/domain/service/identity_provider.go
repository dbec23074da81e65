package service

import "context"

// ProviderSession is the session material returned by the hosted auth
// provider after a successful magic-link code exchange.
type ProviderSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// IdentityProvider is the client for the hosted authentication service.
// Credential storage, magic-link delivery, and session issuance all live on
// the provider side; this interface only exchanges codes and reports
// configuration health.
type IdentityProvider interface {
	// ExchangeCode trades a magic-link callback code for a session.
	ExchangeCode(ctx context.Context, code string) (*ProviderSession, error)

	// VerifyConfig reports whether the provider URL and keys are present.
	VerifyConfig() error
}
