package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestFabricDisplayName(t *testing.T) {
	assert.Equal(t, "Tela #1", FabricDisplayName("tela1"))
	assert.Equal(t, "Tela #4", FabricDisplayName("tela4"))
	assert.Equal(t, "mesh", FabricDisplayName("mesh"))
	assert.Equal(t, "", FabricDisplayName(""))
}

func TestJoinAreas(t *testing.T) {
	assert.Equal(t, "area1, area3", JoinAreas([]string{"area1", "area3"}))
	assert.Equal(t, "chest", JoinAreas([]string{"chest"}))
}

func TestSecretMatches_Plain(t *testing.T) {
	assert.True(t, SecretMatches("s3cret", "s3cret"))
	assert.False(t, SecretMatches("s3cret", "s3cre"))
	assert.False(t, SecretMatches("s3cret", ""))
	assert.False(t, SecretMatches("", ""))
}

func TestSecretMatches_Bcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, IsBcryptHash(string(hash)))
	assert.True(t, SecretMatches(string(hash), "s3cret"))
	assert.False(t, SecretMatches(string(hash), "wrong"))
	// the hash itself is not accepted as the password
	assert.False(t, SecretMatches(string(hash), string(hash)))
}
