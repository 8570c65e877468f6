// Package credentials provides one-way password hashing. bcrypt with
// the default cost (10) is the only intentionally expensive operation
// on the login and registration paths.
package credentials

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with a fresh random salt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword compares a plaintext password with a stored hash.
// bcrypt's comparison is constant-time; a malformed hash and a
// mismatch both surface as a non-nil error.
func VerifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
