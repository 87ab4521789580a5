package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"))
	userID := uuid.New()

	token, err := m.Sign(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestVerifyTamperedToken(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"))

	token, err := m.Sign(uuid.New())
	require.NoError(t, err)

	// Flip one byte in the middle of the token; whatever it lands on,
	// verification must refuse it.
	raw := []byte(token)
	raw[len(raw)/2] ^= 0x01

	_, err = m.Verify(string(raw))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	m := NewTokenManager(secret)

	rc := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, rc).SignedString(secret)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenManager([]byte("secret-a")).Sign(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenManager([]byte("secret-b")).Verify(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyGarbage(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"))

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrUnauthorized, "token %q", token)
	}
}
