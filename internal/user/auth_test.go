package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(42, string(RoleAdmin), "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, string(RoleAdmin), claims.Role)
}

func TestParseJWT_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseJWT("not.a.token")
		assert.Error(t, err)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := GenerateJWT(42, string(RoleUser), "user@example.com")
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "different-secret")
		_, err = ParseJWT(token)
		assert.Error(t, err)
	})
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(1, string(RoleUser), "user@example.com")
	assert.Error(t, err)
}
