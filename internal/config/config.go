package config

import (
	"os"
	"regexp"

	"github.com/joho/godotenv"
)

// Config carries the environment for both binaries. OAuth provider
// credentials are individually optional; a provider with missing
// credentials is disabled at startup instead of failing it.
type Config struct {
	AppPort     string
	GatewayPort string

	// UserServiceURL is the upstream the gateway forwards to.
	UserServiceURL string

	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string

	SessionSecret string
	JWTSecret     string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	GitHubClientID     string
	GitHubClientSecret string
	GitHubRedirectURL  string
}

func Load() Config {
	// Best effort; deployments without a .env file rely on real env vars.
	_ = godotenv.Load()

	return Config{
		AppPort:     getenv("APP_PORT", "4001"),
		GatewayPort: getenv("GATEWAY_PORT", "3000"),

		UserServiceURL: getenv("USER_SERVICE_URL", "http://user-service:4001"),

		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		JWTSecret:     os.Getenv("JWT_SECRET"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),

		GitHubClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		GitHubClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		GitHubRedirectURL:  os.Getenv("GITHUB_REDIRECT_URL"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var dsnCredentials = regexp.MustCompile(`:[^:@/]+@`)

// RedactDSN masks the password part of a connection string so it can be
// logged without leaking credentials.
func RedactDSN(dsn string) string {
	return dsnCredentials.ReplaceAllString(dsn, ":****@")
}
