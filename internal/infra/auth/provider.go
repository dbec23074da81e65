package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"vitrina/config"
	"vitrina/internal/domain/service"
)

const exchangeTimeout = 10 * time.Second

// identityProvider talks to the hosted auth service over its REST surface.
// Only the magic-link code exchange needs a network round trip; token
// verification stays local in jwtService.
type identityProvider struct {
	client  *resty.Client
	baseURL string
	anonKey string
}

// NewIdentityProvider builds the provider client from the auth configuration.
func NewIdentityProvider(cfg *config.Config) service.IdentityProvider {
	client := resty.New().
		SetTimeout(exchangeTimeout).
		SetHeader("Content-Type", "application/json")

	return &identityProvider{
		client:  client,
		baseURL: cfg.Auth.ProviderURL,
		anonKey: cfg.Auth.AnonKey,
	}
}

type exchangeRequest struct {
	AuthCode string `json:"auth_code"`
}

type exchangeResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	Error        string `json:"error_description"`
}

// ExchangeCode trades a magic-link callback code for a session.
func (p *identityProvider) ExchangeCode(ctx context.Context, code string) (*service.ProviderSession, error) {
	if err := p.VerifyConfig(); err != nil {
		return nil, err
	}

	var result exchangeResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("apikey", p.anonKey).
		SetQueryParam("grant_type", "pkce").
		SetBody(exchangeRequest{AuthCode: code}).
		SetResult(&result).
		SetError(&result).
		Post(p.baseURL + "/auth/v1/token")
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach auth provider")
	}

	if resp.IsError() {
		if result.Error != "" {
			return nil, fmt.Errorf("auth provider rejected code: %s", result.Error)
		}

		return nil, fmt.Errorf("auth provider rejected code: status %d", resp.StatusCode())
	}

	if result.AccessToken == "" {
		return nil, errors.New("auth provider returned no access token")
	}

	return &service.ProviderSession{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	}, nil
}

// VerifyConfig reports whether the provider URL and anon key are present.
func (p *identityProvider) VerifyConfig() error {
	if p.baseURL == "" || p.anonKey == "" {
		return errors.New("auth provider url and anon key must be configured")
	}

	return nil
}
