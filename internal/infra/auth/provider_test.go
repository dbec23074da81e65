package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrina/config"
)

func newProviderConfig(url, anonKey string) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{ProviderURL: url, AnonKey: anonKey}

	return cfg
}

func TestVerifyConfig_RequiresURLAndKey(t *testing.T) {
	t.Parallel()

	assert.Error(t, NewIdentityProvider(newProviderConfig("", "anon")).VerifyConfig())
	assert.Error(t, NewIdentityProvider(newProviderConfig("https://auth.example.com", "")).VerifyConfig())
	assert.NoError(t, NewIdentityProvider(newProviderConfig("https://auth.example.com", "anon")).VerifyConfig())
}

func TestExchangeCode_ReturnsSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "pkce", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "magic-code", body["auth_code"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-abc",
			"refresh_token": "refresh-def",
			"expires_in":    3600,
		})
	}))
	defer srv.Close()

	provider := NewIdentityProvider(newProviderConfig(srv.URL, "anon-key"))

	session, err := provider.ExchangeCode(context.Background(), "magic-code")
	require.NoError(t, err)
	assert.Equal(t, "access-abc", session.AccessToken)
	assert.Equal(t, "refresh-def", session.RefreshToken)
	assert.Equal(t, 3600, session.ExpiresIn)
}

func TestExchangeCode_SurfacesProviderRejection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error_description": "invalid flow state",
		})
	}))
	defer srv.Close()

	provider := NewIdentityProvider(newProviderConfig(srv.URL, "anon-key"))

	_, err := provider.ExchangeCode(context.Background(), "stale-code")
	assert.ErrorContains(t, err, "invalid flow state")
}

func TestExchangeCode_FailsWithoutConfig(t *testing.T) {
	t.Parallel()

	provider := NewIdentityProvider(newProviderConfig("", ""))

	_, err := provider.ExchangeCode(context.Background(), "code")
	assert.Error(t, err)
}
