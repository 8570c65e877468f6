package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreDuplicateEmail(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &User{Email: "a@x.com"}))

	err := store.Create(ctx, &User{Email: "A@X.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, store.Len())
}

func TestMemStoreLookups(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	u := &User{
		Email:      "fed@x.com",
		Provider:   ProviderGitHub,
		ProviderID: "42",
	}
	require.NoError(t, store.Create(ctx, u))
	require.NotEmpty(t, u.ID)

	byEmail, err := store.GetByEmail(ctx, "FED@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byProvider, err := store.GetByProvider(ctx, ProviderGitHub, "42")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byProvider.ID)

	_, err = store.GetByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetByProvider(ctx, ProviderGoogle, "42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.Com "))
}
