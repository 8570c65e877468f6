package app

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/codewithharshjha/micro-services/internal/config"
	"github.com/codewithharshjha/micro-services/internal/db"
	"github.com/codewithharshjha/micro-services/internal/logger"
	"github.com/codewithharshjha/micro-services/internal/redis"
)

type Infra struct {
	DB    *sql.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", map[string]any{
		"dsn": config.RedactDSN(cfg.DatabaseDSN),
	})

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{
		DB:    sqlDB,
		Redis: redisClient,
	}, nil
}
