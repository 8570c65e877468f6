package app

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/codewithharshjha/micro-services/internal/auth"
	"github.com/codewithharshjha/micro-services/internal/auth/handler"
	"github.com/codewithharshjha/micro-services/internal/auth/provider"
	"github.com/codewithharshjha/micro-services/internal/auth/provider/github"
	"github.com/codewithharshjha/micro-services/internal/auth/provider/google"
	"github.com/codewithharshjha/micro-services/internal/auth/token"
	"github.com/codewithharshjha/micro-services/internal/config"
	"github.com/codewithharshjha/micro-services/internal/logger"
	"github.com/codewithharshjha/micro-services/internal/middleware"
	"github.com/codewithharshjha/micro-services/internal/session"
	"github.com/codewithharshjha/micro-services/internal/user"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	store := user.NewPostgresStore(infra.DB)
	issuer := token.NewIssuer(cfg.JWTSecret, token.DefaultTTL)
	authService := auth.NewService(store, issuer)

	providers, err := buildProviders(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	authHandler := handler.NewHandler(
		authService,
		providers,
		sessionStore,
		cfg.SessionSecret,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	authHandler.RegisterRoutes(router)

	router.GET("/auth/me",
		middleware.RequireSession(sessionStore, cfg.SessionSecret),
		authHandler.Me,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	cleanup := func() error {
		if err := infra.DB.Close(); err != nil {
			return err
		}
		return infra.Redis.Close()
	}

	return router, cleanup, nil
}

// buildProviders registers only the providers whose credentials are
// configured. A missing provider is skipped with a warning; its routes
// answer "not available" instead of failing startup.
func buildProviders(ctx context.Context, cfg config.Config) (*provider.Registry, error) {
	var list []provider.Provider

	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		p, err := google.New(ctx, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	} else {
		logger.Warn("skipping google oauth provider, client credentials not set", nil)
	}

	if cfg.GitHubClientID != "" && cfg.GitHubClientSecret != "" {
		p, err := github.New(cfg.GitHubClientID, cfg.GitHubClientSecret, cfg.GitHubRedirectURL)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	} else {
		logger.Warn("skipping github oauth provider, client credentials not set", nil)
	}

	return provider.NewRegistry(list...), nil
}
