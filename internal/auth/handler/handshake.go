package handler

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// The OAuth handshake parks two short-lived cookies on the browser
// between the redirect and the callback: the CSRF state and the PKCE
// verifier. Both expire together; a callback arriving later restarts
// the flow.
const (
	stateCookieName = "__oauth_state"
	pkceCookieName  = "__oauth_pkce"
	handshakeTTL    = 5 * time.Minute
)

func randomToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

func setHandshakeCookie(c *gin.Context, name, value string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(handshakeTTL.Seconds()),
	})
}

// generateState issues the CSRF state parameter and mirrors it in a
// cookie for validation on callback.
func generateState(c *gin.Context) string {
	state := randomToken()
	setHandshakeCookie(c, stateCookieName, state)
	return state
}

func validateState(c *gin.Context) bool {
	stateQuery := c.Query("state")
	if stateQuery == "" {
		return false
	}

	cookie, err := c.Request.Cookie(stateCookieName)
	if err != nil {
		return false
	}
	return cookie.Value == stateQuery
}

// generatePKCE creates the verifier/challenge pair and stashes the
// verifier until the callback.
func generatePKCE(c *gin.Context) (verifier string, challenge string) {
	verifier = randomToken()

	hash := sha256.Sum256([]byte(verifier))
	challenge = base64.RawURLEncoding.EncodeToString(hash[:])

	setHandshakeCookie(c, pkceCookieName, verifier)
	return verifier, challenge
}

func getPKCEVerifier(c *gin.Context) string {
	cookie, err := c.Request.Cookie(pkceCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
