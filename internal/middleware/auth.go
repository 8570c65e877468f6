package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codewithharshjha/micro-services/internal/session"
)

// RequireSession guards routes behind the server-side session issued
// by the federated login flow. The cookie signature is checked before
// any store lookup so forged values cost nothing.
func RequireSession(store session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		sessionID, ok := session.Unsign(cookie.Value, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		sess, err := store.Get(c.Request.Context(), sessionID)
		if err != nil || sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		if time.Now().After(sess.ExpiresAt) {
			_ = store.Delete(c.Request.Context(), sessionID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		c.Set("userID", sess.UserID)
		c.Next()
	}
}
