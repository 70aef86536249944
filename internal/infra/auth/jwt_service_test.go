package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskman/config"
	"taskman/internal/domain/service"
)

const testSecret = "test-secret-key"

func newTestTokenService(t *testing.T, ttl time.Duration) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.Auth = &config.AuthConfig{TokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	token, err := svc.Generate(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Subject)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.Generate(42, "user@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_RejectsTamperedSignature(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	token, err := svc.Generate(42, "user@example.com")
	require.NoError(t, err)

	// Flip the final signature byte.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = svc.Validate(string(tampered))
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Validate(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	}
}

func TestJWTService_RejectsMissingClaims(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	sign := func(claims jwt.Claims) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		return signed
	}

	expiry := jwt.NewNumericDate(time.Now().Add(time.Minute))

	// Missing subject
	noSubject := sign(&service.Claims{
		UserID:           42,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: expiry},
	})
	_, err := svc.Validate(noSubject)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	// Missing user_id
	noUserID := sign(&service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user@example.com", ExpiresAt: expiry},
	})
	_, err = svc.Validate(noUserID)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_RejectsWrongSigningMethod(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	// alg=none tokens must never validate.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
