// Package auth carries the fleet's authentication primitives: bearer
// token minting and verification, the HTTP auth middleware, and the
// bounded password-hashing pool shared by the identity service.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrUnauthorized covers every token failure: absent, malformed,
// forged, expired. Callers must not learn which.
var ErrUnauthorized = errors.New("unauthorized")

const tokenTTL = 24 * time.Hour

// Claims is the verified payload of a bearer token.
type Claims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager signs and verifies HS256 bearer tokens with a shared
// secret. Construct one per process and inject it; the secret comes
// from JWT_SECRET at startup.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret []byte) *TokenManager {
	return &TokenManager{secret: secret}
}

// Sign mints a token for the given user, valid for 24 hours.
func (m *TokenManager) Sign(userID uuid.UUID) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the claims. Every
// failure mode collapses to ErrUnauthorized.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	var rc jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(tokenString, &rc, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	userID, err := uuid.Parse(rc.Subject)
	if err != nil {
		return nil, ErrUnauthorized
	}

	claims := &Claims{UserID: userID}
	if rc.IssuedAt != nil {
		claims.IssuedAt = rc.IssuedAt.Time
	}
	if rc.ExpiresAt != nil {
		claims.ExpiresAt = rc.ExpiresAt.Time
	}

	return claims, nil
}
