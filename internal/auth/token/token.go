// Package token issues and verifies the bearer tokens returned by
// password login. Tokens are stateless: validity is a pure function of
// signature and expiry, with no server-side revocation.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = time.Hour

var ErrInvalidToken = errors.New("token: invalid or expired")

type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer builds an issuer around the process-wide signing secret.
// The ttl is fixed at construction; pass DefaultTTL in production.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose subject is the user id.
func (i *Issuer) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("token: signing failed: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the subject.
func (i *Issuer) Verify(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("token: unexpected signing method %v", t.Header["alg"])
			}
			return i.secret, nil
		},
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
