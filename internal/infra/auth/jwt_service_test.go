package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrina/config"
)

const testSecret = "test-secret"

func newJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{JWTSecret: secret}

	return cfg
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestNewJWTService_BootsWithoutSecret(t *testing.T) {
	t.Parallel()

	// Construction must not refuse an empty secret: the composed app has to
	// come up so the session gate can fail open. Only validation refuses.
	svc := NewJWTService(newJWTConfig(""))
	require.NotNil(t, svc)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateAccessToken(token)
	assert.ErrorContains(t, err, "no jwt secret configured")
}

func TestValidateAccessToken_ExtractsIdentity(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(newJWTConfig(testSecret))

	userID := uuid.New()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "dueno@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "dueno@example.com", claims.Email)
}

func TestValidateAccessToken_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(newJWTConfig(testSecret))

	token := signToken(t, "another-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(newJWTConfig(testSecret))

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_RejectsNonUUIDSubject(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(newJWTConfig(testSecret))

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateAccessToken(token)
	assert.ErrorContains(t, err, "subject")
}
