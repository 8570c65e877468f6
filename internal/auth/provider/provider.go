package provider

import (
	"context"

	"github.com/codewithharshjha/micro-services/internal/auth"
)

// Provider is the contract every external login provider implements.
// Implementations return profile facts only and must not create users,
// sessions, or perform linking logic.
type Provider interface {
	// Name returns the provider identifier (e.g. "google", "github").
	Name() string

	// AuthCodeURL returns the consent-screen URL. State and PKCE
	// parameters are supplied by the caller.
	AuthCodeURL(state string, codeChallenge string) string

	// Exchange trades the authorization code for a normalized profile.
	Exchange(ctx context.Context, code string, codeVerifier string) (*auth.Profile, error)
}
