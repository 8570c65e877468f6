package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery", hash)

	assert.NoError(t, VerifyPassword(hash, "correct horse battery"))
	assert.Error(t, VerifyPassword(hash, "wrong password"))
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.Error(t, VerifyPassword("not-a-bcrypt-hash", "anything"))
}
