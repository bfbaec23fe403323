package jwt

import (
	"testing"

	"github.com/hexahash/attendance-portal-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	empID := "emp-123"
	token, expiresAt, err := svc.GenerateAccessToken("user-1", "john@example.com", &empID, user.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	userID, _ := decoded.Get("user_id")
	assert.Equal(t, "user-1", userID)
	role, _ := decoded.Get("role")
	assert.Equal(t, "employee", role)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
	employeeID, _ := decoded.Get("employee_id")
	assert.Equal(t, "emp-123", employeeID)
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "refresh", tokenType)
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "bogus", "24h")

	_, _, err := svc.GenerateAccessToken("user-1", "john@example.com", nil, user.RoleAdmin)
	assert.Error(t, err)
}

func TestTokenRevocation(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestPruneRevokedDropsExpiredEntries(t *testing.T) {
	// Refresh tokens expire in the past so their revocation entries are
	// immediately prunable.
	svc := NewJWTService("test-secret", "1h", "-1h")

	expired, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	live, _, err := svc.GenerateAccessToken("user-1", "john@example.com", nil, user.RoleEmployee)
	require.NoError(t, err)

	svc.RevokeToken(expired)
	svc.RevokeToken(live)
	assert.True(t, svc.IsTokenRevoked(expired))
	assert.True(t, svc.IsTokenRevoked(live))

	removed := svc.PruneRevoked()
	assert.Equal(t, 1, removed)
	assert.False(t, svc.IsTokenRevoked(expired))
	assert.True(t, svc.IsTokenRevoked(live))
}
