package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionRoundTrip(t *testing.T) {
	teamID := 42
	signed, err := GenerateSession("captain_tg", RoleTeamCaptain, "backend-token-abc", &teamID, testSecret, 60)
	require.NoError(t, err)

	claims, err := ValidateSession(signed, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "captain_tg", claims.Username)
	assert.Equal(t, RoleTeamCaptain, claims.Role)
	assert.Equal(t, "backend-token-abc", claims.BackendToken)
	require.NotNil(t, claims.TeamID)
	assert.Equal(t, 42, *claims.TeamID)
	assert.False(t, claims.IsAdmin())
}

func TestValidateSessionWrongSecret(t *testing.T) {
	signed, err := GenerateSession("admin", RoleAdmin, "backend-token", nil, testSecret, 60)
	require.NoError(t, err)

	_, err = ValidateSession(signed, "another-secret")
	assert.Error(t, err)
}

func TestValidateSessionExpired(t *testing.T) {
	signed, err := GenerateSession("admin", RoleAdmin, "backend-token", nil, testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateSession(signed, testSecret)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateSessionEmptyToken(t *testing.T) {
	_, err := ValidateSession("", testSecret)
	assert.Error(t, err)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&Claims{Role: RoleAdmin}).IsAdmin())
	assert.True(t, (&Claims{Role: RoleSuperAdmin}).IsAdmin())
	assert.False(t, (&Claims{Role: RoleTeamCaptain}).IsAdmin())
	assert.False(t, (&Claims{Role: RolePlayer}).IsAdmin())
}
