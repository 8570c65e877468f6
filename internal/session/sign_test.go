package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUnsignRoundTrip(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)

	signed := Sign(id, "secret")
	got, ok := Unsign(signed, "secret")
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestUnsignRejectsTampering(t *testing.T) {
	signed := Sign("session-id", "secret")

	_, ok := Unsign(signed, "other-secret")
	assert.False(t, ok)

	_, ok = Unsign("forged-id."+signed, "secret")
	assert.False(t, ok)

	_, ok = Unsign("no-separator", "secret")
	assert.False(t, ok)

	_, ok = Unsign("", "secret")
	assert.False(t, ok)
}
