package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("password123", DefaultBcryptCost)
	require.NoError(t, err)

	assert.NotEqual(t, "password123", hashed)
	assert.True(t, VerifyPassword(hashed, "password123"))
	assert.False(t, VerifyPassword(hashed, "password124"))
	assert.False(t, VerifyPassword(hashed, ""))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := HashPassword("password123", DefaultBcryptCost)
	require.NoError(t, err)
	second, err := HashPassword("password123", DefaultBcryptCost)
	require.NoError(t, err)

	// bcrypt salts per call, identical plaintexts must not collide
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword(first, "password123"))
	assert.True(t, VerifyPassword(second, "password123"))
}

func TestHashPasswordCostFloor(t *testing.T) {
	hashed, err := HashPassword("password123", 0)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hashed, "password123"))
}

func TestVerifyPasswordGarbageHash(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "password123"))
}
