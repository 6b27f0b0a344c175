package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret-0123"

func TestNewTokenService_ShortSecret(t *testing.T) {
	_, err := NewTokenService("short", time.Hour)
	assert.Error(t, err)
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	token, expiresAt, err := svc.Issue("01J8SESSION")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "01J8SESSION", claims.SessionID)
	assert.Equal(t, tokenTypePage, claims.TokenType)
	assert.Equal(t, "01J8SESSION", claims.Subject)
	assert.Nil(t, claims.ExpiresAt, "expiry belongs to the session entry, not the token")
}

func TestTokenService_ValidOutlivesTTL(t *testing.T) {
	svc, err := NewTokenService(testSecret, time.Second)
	require.NoError(t, err)
	impl := svc.(*tokenServiceImpl)

	token, _, err := svc.Issue("s1")
	require.NoError(t, err)

	impl.now = func() time.Time { return time.Now().Add(24 * time.Hour) }
	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "s1", claims.SessionID)
}

func TestTokenService_Rejects(t *testing.T) {
	svc, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)
	impl := svc.(*tokenServiceImpl)

	other, err := NewTokenService("another-secret-another-secret-0123456", time.Hour)
	require.NoError(t, err)
	foreign, _, err := other.Issue("s1")
	require.NoError(t, err)

	future := &tokenServiceImpl{secret: impl.secret, ttl: time.Minute, now: func() time.Time { return time.Now().Add(time.Hour) }}
	notYetValid, _, err := future.Issue("s1")
	require.NoError(t, err)

	stale := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": "s1", "token_type": tokenTypePage, "iss": tokenIssuer,
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	staleToken, err := stale.SignedString(impl.secret)
	require.NoError(t, err)

	wrongType := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": "s1", "token_type": "refresh", "iss": tokenIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	wrongTypeToken, err := wrongType.SignedString(impl.secret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"other secret", foreign},
		{"not yet valid", notYetValid},
		{"explicit exp in the past", staleToken},
		{"wrong token type", wrongTypeToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token)
			assert.True(t, errors.Is(err, ErrInvalidSessionToken), "got %v", err)
		})
	}
}
