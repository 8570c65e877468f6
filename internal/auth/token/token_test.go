package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", DefaultTTL)

	signed, err := issuer.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	subject, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestVerifyExpired(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)

	signed, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, err := NewIssuer("secret-a", DefaultTTL).Issue("user-123")
	require.NoError(t, err)

	_, err = NewIssuer("secret-b", DefaultTTL).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewIssuer("test-secret", DefaultTTL)

	_, err := issuer.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
