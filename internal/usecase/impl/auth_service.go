package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"go.uber.org/fx"
)

type authService struct {
	provider service.IdentityProvider
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Provider service.IdentityProvider
	Logger   *slog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		provider: params.Provider,
		logger:   params.Logger,
	}
}

// ExchangeCode trades a magic-link callback code for a session. Any provider
// rejection maps to the same invalid-code error; the root cause only goes to
// the log.
func (s *authService) ExchangeCode(ctx context.Context, code string) (*usecase.AuthSession, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domainerrors.ErrAuthCodeInvalid
	}

	session, err := s.provider.ExchangeCode(ctx, code)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "magic-link code exchange failed",
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrAuthCodeInvalid
	}

	return &usecase.AuthSession{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
	}, nil
}
