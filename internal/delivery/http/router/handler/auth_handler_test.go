package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vitrina/config"
	domainerrors "vitrina/internal/domain/errors"
	mockUsecase "vitrina/internal/mocks/usecase"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandlerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{CookieName: "vitrina-access-token"}
	cfg.Session = &config.SessionConfig{LoginPath: "/auth/login"}

	return cfg
}

func runCallback(t *testing.T, h *AuthHandler, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Callback(e.NewContext(req, rec)))

	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	t.Fatalf("cookie %q not set", name)

	return nil
}

func TestAuthHandler_Callback_SetsCookieAndRedirects(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		ExchangeCode(mock.Anything, "magic-code").
		Return(&usecase.AuthSession{AccessToken: "issued-token", ExpiresIn: 3600}, nil)

	h := NewAuthHandler(uc, newAuthHandlerConfig(), newTestLogger())

	rec := runCallback(t, h, "/auth/callback?code=magic-code")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(t, rec, "vitrina-access-token")
	assert.Equal(t, "issued-token", cookie.Value)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
}

func TestAuthHandler_Callback_HonorsNextParam(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		ExchangeCode(mock.Anything, "magic-code").
		Return(&usecase.AuthSession{AccessToken: "issued-token", ExpiresIn: 3600}, nil)

	h := NewAuthHandler(uc, newAuthHandlerConfig(), newTestLogger())

	rec := runCallback(t, h, "/auth/callback?code=magic-code&next=/business/abc")
	assert.Equal(t, "/business/abc", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_Callback_RejectsExternalNextParam(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		ExchangeCode(mock.Anything, "magic-code").
		Return(&usecase.AuthSession{AccessToken: "issued-token", ExpiresIn: 3600}, nil)

	h := NewAuthHandler(uc, newAuthHandlerConfig(), newTestLogger())

	rec := runCallback(t, h, "/auth/callback?code=magic-code&next=https://evil.example.com")
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_Callback_MissingCode(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newAuthHandlerConfig(), newTestLogger())

	rec := runCallback(t, h, "/auth/callback")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login?error=no_code", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_Callback_ExchangeFailure(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		ExchangeCode(mock.Anything, "stale-code").
		Return(nil, domainerrors.ErrAuthCodeInvalid)

	h := NewAuthHandler(uc, newAuthHandlerConfig(), newTestLogger())

	rec := runCallback(t, h, "/auth/callback?code=stale-code")

	assert.Equal(t, http.StatusFound, rec.Code)
	location := rec.Header().Get(echo.HeaderLocation)
	assert.Contains(t, location, "/auth/login?error=")
	assert.NotContains(t, location, " ", "error message must be urlencoded")
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newAuthHandlerConfig(), newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Logout(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(t, rec, "vitrina-access-token")
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
