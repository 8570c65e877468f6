package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codewithharshjha/micro-services/internal/auth"
	"github.com/codewithharshjha/micro-services/internal/auth/provider"
	"github.com/codewithharshjha/micro-services/internal/logger"
	"github.com/codewithharshjha/micro-services/internal/session"
)

const (
	sessionTTL = 24 * time.Hour

	// failureRedirect is where a failed provider handshake lands the
	// browser instead of an error page.
	failureRedirect = "/login"
)

// providerLabels feed the "<Provider> login success" response message.
var providerLabels = map[string]string{
	"google": "Google",
	"github": "GitHub",
}

type Handler struct {
	svc           *auth.Service
	providers     *provider.Registry
	sessionStore  session.Store
	sessionSecret string
}

func NewHandler(
	svc *auth.Service,
	registry *provider.Registry,
	sessionStore session.Store,
	sessionSecret string,
) *Handler {
	return &Handler{
		svc:           svc,
		providers:     registry,
		sessionStore:  sessionStore,
		sessionSecret: sessionSecret,
	}
}

// RegisterRoutes wires the public auth surface. Paths match the edge
// gateway's forwarding prefix exactly.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	grp := r.Group("/auth")

	grp.POST("/create", h.Register)
	grp.GET("/all", h.ListUsers)
	grp.POST("/login", h.Login)
	grp.POST("/logout", h.Logout)

	for _, name := range []string{"google", "github"} {
		grp.GET("/"+name, h.oauthStart(name))
		grp.GET("/"+name+"/callback", h.oauthCallback(name))
	}
}

// oauthStart redirects the browser to the provider consent screen. An
// unconfigured provider answers 503 instead of crashing the flow.
func (h *Handler) oauthStart(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := h.providers.Get(name)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"message": providerLabels[name] + " login is not available",
			})
			return
		}

		state := generateState(c)
		_, codeChallenge := generatePKCE(c)

		c.Redirect(http.StatusFound, p.AuthCodeURL(state, codeChallenge))
	}
}

func (h *Handler) oauthCallback(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := h.providers.Get(name)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"message": providerLabels[name] + " login is not available",
			})
			return
		}

		// Every handshake failure lands on the failure page; no
		// session is issued on any of these paths.
		if !validateState(c) {
			logger.Warn("oauth callback state mismatch", map[string]any{
				"provider": name,
			})
			c.Redirect(http.StatusFound, failureRedirect)
			return
		}

		if errParam := c.Query("error"); errParam != "" {
			logger.Warn("oauth callback returned error", map[string]any{
				"provider": name,
				"error":    errParam,
				"desc":     c.Query("error_description"),
			})
			c.Redirect(http.StatusFound, failureRedirect)
			return
		}

		code := c.Query("code")
		codeVerifier := getPKCEVerifier(c)
		if code == "" || codeVerifier == "" {
			logger.Warn("oauth callback missing code or verifier", map[string]any{
				"provider": name,
			})
			c.Redirect(http.StatusFound, failureRedirect)
			return
		}

		profile, err := p.Exchange(c.Request.Context(), code, codeVerifier)
		if err != nil {
			logger.Warn("oauth exchange failed", map[string]any{
				"provider": name,
				"error":    err.Error(),
			})
			c.Redirect(http.StatusFound, failureRedirect)
			return
		}

		u, err := h.svc.ResolveFederated(c.Request.Context(), profile)
		if errors.Is(err, auth.ErrNoEmail) {
			c.Redirect(http.StatusFound, failureRedirect)
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Unexpected server error",
				"error":   err.Error(),
			})
			return
		}

		if err := h.createSession(c, u.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "failed to create session",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": providerLabels[name] + " login success",
			"user":    u,
		})
	}
}

// createSession persists a server-side session and sets the signed
// cookie. Only the federated browser flow uses sessions; password
// login hands out a bearer token instead.
func (h *Handler) createSession(c *gin.Context, userID string) error {
	id, err := session.GenerateID()
	if err != nil {
		return err
	}

	now := time.Now()
	sess := session.Session{
		SessionID: id,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}

	if err := h.sessionStore.Create(c.Request.Context(), sess); err != nil {
		return err
	}

	session.SetCookie(
		c.Writer,
		session.Sign(id, h.sessionSecret),
		sess.ExpiresAt,
		session.CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
	)
	return nil
}

// Logout deletes the session and clears the cookie. Idempotent.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		if id, ok := session.Unsign(cookie.Value, h.sessionSecret); ok {
			_ = h.sessionStore.Delete(c.Request.Context(), id)
		}
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Status(http.StatusNoContent)
}

// Me reports the authenticated user id; guarded by the session
// middleware.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id": c.GetString("userID"),
	})
}
