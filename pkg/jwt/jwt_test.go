package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *Manager {
	return NewManager("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := testManager()

	token, err := m.GenerateAccessToken("42", "alice", true)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsStaff)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := testManager()

	token, err := m.GenerateRefreshToken("42")
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "refresh", claims.Type)
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	m := testManager()

	access, err := m.GenerateAccessToken("42", "alice", false)
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("42")
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)
	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	m := testManager()
	other := NewManager("another-secret", 15*time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken("42", "alice", false)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken("42", "alice", false)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}
