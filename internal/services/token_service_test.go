package services

import (
	"testing"
	"time"

	"github.com/longkerdandy/burger-backend/internal/config"
	"github.com/longkerdandy/burger-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(expiry time.Duration) *TokenService {
	return NewTokenService(&config.Config{
		JWTSecret: "test-secret-at-least-32-bytes-long!",
		JWTExpiry: expiry,
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(time.Hour)
	user := &models.User{
		Username: "alice",
		Roles:    []models.Role{models.RoleUser, models.RoleAdmin},
	}

	token, expiresAt, err := svc.Generate(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	principal, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", principal.Username)
	assert.Equal(t, []models.Role{models.RoleUser, models.RoleAdmin}, principal.Roles)
}

func TestTokenExpired(t *testing.T) {
	svc := newTestTokenService(-time.Minute)
	token, _, err := svc.Generate(&models.User{Username: "alice"})
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	token, _, err := newTestTokenService(time.Hour).Generate(&models.User{Username: "alice"})
	require.NoError(t, err)

	other := NewTokenService(&config.Config{JWTSecret: "another-secret", JWTExpiry: time.Hour})
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	svc := newTestTokenService(time.Hour)
	_, err := svc.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
