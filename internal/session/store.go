package session

import (
	"context"
	"time"
)

// Session is the server-side credential for the browser OAuth flow. It
// is distinct from the bearer token issued at password login: sessions
// are opaque, stored server-side and cookie-bound; tokens are stateless
// and self-verifying.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store holds sessions for their lifetime. Implementations own expiry;
// Get must not return a session past its ExpiresAt.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
