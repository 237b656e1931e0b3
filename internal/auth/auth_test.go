package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	u := User{ID: "u-1", Email: "admin@costeratours.com", Role: RoleAdmin}

	token, err := GenerateToken(u, "secret", time.Hour)
	require.NoError(t, err)

	parsed, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, u, parsed)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(User{ID: "u-1", Role: RoleAdmin}, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(User{ID: "u-1", Role: RoleAdmin}, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", "secret")
	assert.Error(t, err)
}

func TestRoleChecks(t *testing.T) {
	assert.True(t, IsAdmin(User{Role: RoleAdmin}))
	assert.False(t, IsAdmin(User{Role: RoleEditor}))
	assert.False(t, IsAdmin(User{}))

	assert.True(t, CanManageContent(User{Role: RoleAdmin}))
	assert.True(t, CanManageContent(User{Role: RoleEditor}))
	assert.False(t, CanManageContent(User{Role: "viewer"}))
}
