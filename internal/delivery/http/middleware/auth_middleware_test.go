package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vitrina/config"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/service"
	mockSvc "vitrina/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{CookieName: "vitrina-access-token"}

	return cfg
}

func runAuth(t *testing.T, m *AuthMiddleware, decorate func(*http.Request)) (uuid.UUID, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/business", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID uuid.UUID
	handler := m.Authenticate(func(c echo.Context) error {
		id, err := UserID(c)
		if err != nil {
			return err
		}
		gotUserID = id

		return c.NoContent(http.StatusOK)
	})

	return gotUserID, handler(c)
}

func TestAuthMiddleware_AcceptsCookieToken(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("cookie-token").
		Return(&service.SessionClaims{UserID: userID}, nil)

	m := NewAuthMiddleware(tokenSvc, newAuthConfig())

	gotUserID, err := runAuth(t, m, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "vitrina-access-token", Value: "cookie-token"})
	})
	require.NoError(t, err)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthMiddleware_AcceptsBearerToken(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("bearer-token").
		Return(&service.SessionClaims{UserID: userID}, nil)

	m := NewAuthMiddleware(tokenSvc, newAuthConfig())

	gotUserID, err := runAuth(t, m, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer bearer-token")
	})
	require.NoError(t, err)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthMiddleware_CookieWinsOverHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("cookie-token").
		Return(&service.SessionClaims{UserID: uuid.New()}, nil)

	m := NewAuthMiddleware(tokenSvc, newAuthConfig())

	_, err := runAuth(t, m, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "vitrina-access-token", Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer other-token")
	})
	require.NoError(t, err)
}

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newAuthConfig())

	_, err := runAuth(t, m, nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_RejectsInvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("forged").
		Return(nil, errors.New("signature is invalid"))

	m := NewAuthMiddleware(tokenSvc, newAuthConfig())

	_, err := runAuth(t, m, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer forged")
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
