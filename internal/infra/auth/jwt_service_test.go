package auth

import (
	"testing"
	"time"

	"scout/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func TestJWTService_GenerateAndValidate(t *testing.T) {
	tokenService, err := NewJWTService(testSecret, 24*time.Hour)
	require.NoError(t, err)

	recruiterID := uuid.New()

	token, err := tokenService.Generate(recruiterID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Round-trip: the decoded identity equals the encoded one
	decoded, err := tokenService.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, recruiterID, decoded)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("", 24*time.Hour)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenService, err := NewJWTService(testSecret, 24*time.Hour)
	require.NoError(t, err)

	_, err = tokenService.Validate("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	issuer, err := NewJWTService(testSecret, 24*time.Hour)
	require.NoError(t, err)
	verifier, err := NewJWTService("a-different-secret-entirely", 24*time.Hour)
	require.NoError(t, err)

	token, err := issuer.Generate(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	svc := &jwtService{
		secret: []byte(testSecret),
		ttl:    time.Hour,
		now:    time.Now,
	}

	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Generate(uuid.New())
	require.NoError(t, err)

	// One second before expiry the token is still accepted.
	svc.now = func() time.Time { return issuedAt.Add(time.Hour - time.Second) }
	_, err = svc.Validate(token)
	assert.NoError(t, err)

	// Exactly at expiry it is rejected.
	svc.now = func() time.Time { return issuedAt.Add(time.Hour) }
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	// And after expiry, of course.
	svc.now = func() time.Time { return issuedAt.Add(time.Hour + time.Second) }
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
