package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.True(t, CompareHashAndPassword(hash, "s3cretpass"))
	assert.False(t, CompareHashAndPassword(hash, "wrongpass"))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("samepassword")
	require.NoError(t, err)
	h2, err := HashPassword("samepassword")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestCompareHashAndPasswordInvalidHash(t *testing.T) {
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "anything"))
}
