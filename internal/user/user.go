package user

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Provider tags how a user record was created.
const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
	// Local accounts carry no provider tag; the field stays empty.
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// User is the central identity record. Exactly one user exists per
// email, whether the account was created locally or by a federated
// login. PasswordHash is set only for local accounts and never leaves
// the service.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Provider     string    `json:"provider,omitempty"`
	ProviderID   string    `json:"providerId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Local reports whether the account has a password to verify against.
func (u *User) Local() bool {
	return u.PasswordHash != ""
}

// NormalizeEmail is the single case-normalization policy: emails are
// compared and stored lower-cased. The store additionally enforces
// uniqueness on LOWER(email) so the two layers agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Store is the persistence capability over user records. Lookups are
// keyed by email and by external provider identity. Create must report
// ErrDuplicateEmail on a uniqueness violation; that constraint is the
// only serialization point between concurrent registrations.
type Store interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByProvider(ctx context.Context, provider, providerID string) (*User, error)
	List(ctx context.Context) ([]User, error)
}
