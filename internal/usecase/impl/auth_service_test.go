package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/service"
	mockSvc "vitrina/internal/mocks/service"
	"vitrina/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockSvc.MockIdentityProvider) {
	t.Helper()

	provider := mockSvc.NewMockIdentityProvider(t)

	authUsecase := NewAuthService(AuthServiceParams{
		Provider: provider,
		Logger:   newDiscardLogger(),
	})

	return authUsecase, provider
}

func TestAuthService_ExchangeCode(t *testing.T) {
	authUsecase, provider := newAuthServiceForTest(t)

	ctx := context.Background()

	provider.EXPECT().
		ExchangeCode(ctx, "magic-code").
		Return(&service.ProviderSession{
			AccessToken:  "access-abc",
			RefreshToken: "refresh-def",
			ExpiresIn:    3600,
		}, nil)

	session, err := authUsecase.ExchangeCode(ctx, "magic-code")
	require.NoError(t, err)
	assert.Equal(t, "access-abc", session.AccessToken)
	assert.Equal(t, "refresh-def", session.RefreshToken)
	assert.Equal(t, 3600, session.ExpiresIn)
}

func TestAuthService_ExchangeCode_RejectsBlankCode(t *testing.T) {
	authUsecase, _ := newAuthServiceForTest(t)

	_, err := authUsecase.ExchangeCode(context.Background(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrAuthCodeInvalid)
}

func TestAuthService_ExchangeCode_MapsProviderFailure(t *testing.T) {
	authUsecase, provider := newAuthServiceForTest(t)

	ctx := context.Background()

	provider.EXPECT().
		ExchangeCode(ctx, "stale-code").
		Return(nil, errors.New("invalid flow state"))

	_, err := authUsecase.ExchangeCode(ctx, "stale-code")
	assert.ErrorIs(t, err, domainerrors.ErrAuthCodeInvalid)
}
