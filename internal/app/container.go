package app

import (
	"context"
	"time"

	"jobboard-ai/internal/config"
	"jobboard-ai/internal/database"
	dbpostgres "jobboard-ai/internal/database/postgres"
	"jobboard-ai/internal/events"
	"jobboard-ai/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config    config.Config
	Logger    *zap.Logger
	DB        database.DB
	Publisher *events.RedisPublisher
	Hub       *ws.Hub
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Publisher: events.NewRedisPublisher(cfg.Redis, logger),
		Hub:       ws.NewHub(logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Publisher != nil {
		_ = c.Publisher.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
