package auth

// Profile is the normalized identity returned by an OAuth provider.
// It contains facts only; account matching and creation decisions live
// in Service.ResolveFederated.
type Profile struct {
	Provider       string // "google" or "github"
	ProviderUserID string // provider-scoped subject identifier
	Email          string // may be empty (GitHub hides emails by default)
	EmailVerified  bool
	DisplayName    string
	Username       string // provider login name, used for email synthesis
}
