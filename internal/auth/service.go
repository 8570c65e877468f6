// Package auth orchestrates credential registration, password login and
// federated identity resolution over the user store, the password
// hasher and the token issuer.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/codewithharshjha/micro-services/internal/auth/credentials"
	"github.com/codewithharshjha/micro-services/internal/auth/token"
	"github.com/codewithharshjha/micro-services/internal/user"
)

type Service struct {
	store  user.Store
	tokens *token.Issuer
}

func NewService(store user.Store, tokens *token.Issuer) *Service {
	return &Service{store: store, tokens: tokens}
}

// Register creates a local account. The existence check and the insert
// are not one transaction; the store's uniqueness constraint backstops
// the race, so a duplicate violation at insert time also reports
// ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	if err := ValidateRegisterInput(in); err != nil {
		return nil, err
	}

	email := user.NormalizeEmail(in.Email)

	_, err := s.store.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrAlreadyExists
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, wrapStore("register lookup", err)
	}

	hash, err := credentials.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("auth: password hashing failed: %w", err)
	}

	u := &user.User{
		Name:         in.Name,
		Email:        email,
		Phone:        in.Phone,
		PasswordHash: hash,
	}

	if err := s.store.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, ErrAlreadyExists
		}
		return nil, wrapStore("register create", err)
	}
	return u, nil
}

// Login verifies the password for a local account and issues a bearer
// token. Accounts without a password hash (OAuth-only) report
// ErrNotFound, same as an unknown email.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.store.GetByEmail(ctx, user.NormalizeEmail(email))
	if errors.Is(err, user.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", wrapStore("login lookup", err)
	}
	if !u.Local() {
		return "", ErrNotFound
	}

	if err := credentials.VerifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	t, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", err
	}
	return t, nil
}

// ResolveFederated maps a provider profile to a user record, creating
// one opportunistically for an unseen email. A profile without an
// email gets one synthesized as username@<provider>.com (the GitHub
// case); ErrNoEmail only when neither exists. An email that is already
// registered resolves to the existing record untouched.
func (s *Service) ResolveFederated(ctx context.Context, p *Profile) (*user.User, error) {
	if p == nil {
		return nil, errors.New("auth: nil profile")
	}

	email := user.NormalizeEmail(p.Email)
	if email == "" && p.Username != "" {
		email = fmt.Sprintf("%s@%s.com", strings.ToLower(p.Username), p.Provider)
	}
	if email == "" {
		return nil, ErrNoEmail
	}

	u, err := s.store.GetByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, wrapStore("federated lookup", err)
	}

	name := p.DisplayName
	if name == "" {
		name = p.Username
	}

	u = &user.User{
		Name:       name,
		Email:      email,
		Provider:   p.Provider,
		ProviderID: p.ProviderUserID,
	}

	if err := s.store.Create(ctx, u); err != nil {
		// Lost a concurrent upsert race; the winner's record is the match.
		if errors.Is(err, user.ErrDuplicateEmail) {
			return s.store.GetByEmail(ctx, email)
		}
		return nil, wrapStore("federated create", err)
	}
	return u, nil
}

// ListAll returns every user record. Unpaginated; administrative and
// debug use only.
func (s *Service) ListAll(ctx context.Context) ([]user.User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, wrapStore("list", err)
	}
	return users, nil
}
