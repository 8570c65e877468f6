package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewithharshjha/micro-services/internal/auth"
)

type stubProvider struct {
	name string
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) AuthCodeURL(state, codeChallenge string) string {
	return "https://example.com/authorize?state=" + state
}

func (s *stubProvider) Exchange(context.Context, string, string) (*auth.Profile, error) {
	return &auth.Profile{Provider: s.name}, nil
}

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry(&stubProvider{name: "google"})

	p, err := reg.Get("google")
	require.NoError(t, err)
	assert.Equal(t, "google", p.Name())
}

func TestRegistryGetUnregistered(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get("github")
	assert.ErrorContains(t, err, "not available")
}
