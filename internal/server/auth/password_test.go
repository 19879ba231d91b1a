package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, "pw123", hash)
	assert.True(t, VerifyPassword(hash, "pw123"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyPassword_GarbageHash(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "pw"))
}

func TestHashPassword_LongPassword(t *testing.T) {
	long := strings.Repeat("p", 80)

	hash, err := HashPassword(long)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, long))
	// only the first 72 bytes take part in the comparison
	assert.True(t, VerifyPassword(hash, long[:72]))
	assert.False(t, VerifyPassword(hash, long[:71]))
}
