package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/codewithharshjha/micro-services/internal/config"
	"github.com/codewithharshjha/micro-services/internal/gateway"
	"github.com/codewithharshjha/micro-services/internal/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	proxy, err := gateway.NewProxy(cfg.UserServiceURL, "/auth", "/auth")
	if err != nil {
		logger.Fatal("failed to initialize proxy", map[string]any{
			"error": err.Error(),
		})
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.Any("/auth/*path", proxy.Handle)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Future upstreams (products, orders) mount here with their own
	// public/internal prefixes.

	server := &http.Server{
		Addr:    ":" + cfg.GatewayPort,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	logger.Info("api-gateway started", map[string]any{
		"port":     cfg.GatewayPort,
		"upstream": cfg.UserServiceURL,
	})

	<-ctx.Done()

	logger.Info("shutdown signal received", nil)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("graceful shutdown failed", map[string]any{
			"error": err.Error(),
		})
	}

	logger.Info("api-gateway stopped cleanly", nil)
}
