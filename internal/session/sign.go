package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// The cookie carries "<id>.<hmac(id)>" so a forged or truncated value
// is rejected before any store lookup. The secret is process-wide and
// read-only after startup.

func Sign(id, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(id))
	return id + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Unsign verifies the cookie value and returns the embedded session id.
func Unsign(value, secret string) (string, bool) {
	id, _, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", false
	}
	if !hmac.Equal([]byte(Sign(id, secret)), []byte(value)) {
		return "", false
	}
	return id, true
}
