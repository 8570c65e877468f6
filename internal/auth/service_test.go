package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewithharshjha/micro-services/internal/auth/token"
	"github.com/codewithharshjha/micro-services/internal/user"
)

func newService() (*Service, *user.MemStore, *token.Issuer) {
	store := user.NewMemStore()
	issuer := token.NewIssuer("test-secret", time.Hour)
	return NewService(store, issuer), store, issuer
}

func registerInput() RegisterInput {
	return RegisterInput{
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Password: "supersecret",
		Phone:    "5551234567",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, issuer := newService()
	ctx := context.Background()

	u, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Empty(t, u.Provider)
	assert.NotEqual(t, "supersecret", u.PasswordHash)

	tok, err := svc.Login(ctx, "alice@example.com", "supersecret")
	require.NoError(t, err)

	subject, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, subject)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	in := registerInput()
	in.Email = "Alice@Example.COM"

	u, err := svc.Register(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)

	_, err = svc.Login(ctx, "ALICE@example.com", "supersecret")
	assert.NoError(t, err)
}

func TestRegisterMissingFieldsNoMutation(t *testing.T) {
	svc, store, _ := newService()

	in := registerInput()
	in.Phone = ""

	_, err := svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, store.Len())
}

func TestRegisterInvalidShapeNoMutation(t *testing.T) {
	svc, store, _ := newService()

	in := registerInput()
	in.Password = "short"

	_, err := svc.Register(context.Background(), in)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, 0, store.Len())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, store, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerInput())
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, 1, store.Len())
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, store, _ := newService()

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginOAuthOnlyAccount(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	_, err := svc.ResolveFederated(ctx, &Profile{
		Provider:       user.ProviderGoogle,
		ProviderUserID: "g-1",
		Email:          "fed@example.com",
		DisplayName:    "Fed User",
	})
	require.NoError(t, err)

	// No password hash to verify against; indistinguishable from an
	// unknown account.
	_, err = svc.Login(ctx, "fed@example.com", "anything")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveFederatedCreatesOnce(t *testing.T) {
	svc, store, _ := newService()
	ctx := context.Background()

	profile := &Profile{
		Provider:       user.ProviderGoogle,
		ProviderUserID: "g-42",
		Email:          "a@x.com",
		DisplayName:    "A",
	}

	u1, err := svc.ResolveFederated(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, user.ProviderGoogle, u1.Provider)
	assert.Equal(t, "g-42", u1.ProviderID)
	assert.False(t, u1.Local())

	u2, err := svc.ResolveFederated(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, u1.ID, u2.ID)
	assert.Equal(t, 1, store.Len())
}

func TestResolveFederatedSynthesizesEmail(t *testing.T) {
	svc, _, _ := newService()

	u, err := svc.ResolveFederated(context.Background(), &Profile{
		Provider:       user.ProviderGitHub,
		ProviderUserID: "7",
		Username:       "bob",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob@github.com", u.Email)
	assert.Equal(t, "bob", u.Name)
}

func TestResolveFederatedNoEmail(t *testing.T) {
	svc, store, _ := newService()

	_, err := svc.ResolveFederated(context.Background(), &Profile{
		Provider:       user.ProviderGitHub,
		ProviderUserID: "7",
	})
	assert.ErrorIs(t, err, ErrNoEmail)
	assert.Equal(t, 0, store.Len())
}

func TestResolveFederatedExistingLocalAccount(t *testing.T) {
	svc, store, _ := newService()
	ctx := context.Background()

	local, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	// Same email arriving via Google resolves to the existing record;
	// the local provider tag is left untouched.
	resolved, err := svc.ResolveFederated(ctx, &Profile{
		Provider:       user.ProviderGoogle,
		ProviderUserID: "g-9",
		Email:          "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, local.ID, resolved.ID)
	assert.Empty(t, resolved.Provider)
	assert.Equal(t, 1, store.Len())
}

// racingStore simulates losing the registration race: the pre-check
// sees no user, but by insert time another request has claimed the
// email and the uniqueness constraint fires.
type racingStore struct {
	winner  *user.User
	lookups int
}

func (s *racingStore) Create(context.Context, *user.User) error {
	return user.ErrDuplicateEmail
}

func (s *racingStore) GetByEmail(context.Context, string) (*user.User, error) {
	s.lookups++
	if s.lookups == 1 {
		return nil, user.ErrNotFound
	}
	return s.winner, nil
}

func (s *racingStore) GetByProvider(context.Context, string, string) (*user.User, error) {
	return nil, user.ErrNotFound
}

func (s *racingStore) List(context.Context) ([]user.User, error) {
	return nil, nil
}

func TestRegisterDuplicateAtCreateTime(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)
	svc := NewService(&racingStore{}, issuer)

	_, err := svc.Register(context.Background(), registerInput())
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestResolveFederatedLostRace(t *testing.T) {
	winner := &user.User{ID: "winner-1", Email: "a@x.com"}
	issuer := token.NewIssuer("test-secret", time.Hour)
	svc := NewService(&racingStore{winner: winner}, issuer)

	// The loser must settle for the winner's record, not an error.
	u, err := svc.ResolveFederated(context.Background(), &Profile{
		Provider:       user.ProviderGoogle,
		ProviderUserID: "g-1",
		Email:          "a@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, winner.ID, u.ID)
}

func TestListAll(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	in := registerInput()
	in.Email = "bob@example.com"
	_, err = svc.Register(ctx, in)
	require.NoError(t, err)

	users, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
