package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, "a@b.com", "access", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, "access", token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 1, "a@b.com", "access", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), "access", token)
	assert.Error(t, err)
}

func TestParseRejectsWrongType(t *testing.T) {
	token, err := GenerateToken(secret, 1, "a@b.com", "refresh", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(secret, "access", token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := GenerateToken(secret, 1, "a@b.com", "access", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, "access", token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseToken(secret, "access", "not.a.token")
	assert.Error(t, err)
}
