package events

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"jobboard-ai/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	TypeProfileUpdated      = "profile_updated"
	TypeApplicationReceived = "application_received"
	TypeJobInteraction      = "job_interaction"
)

// Event is the notification payload forwarded to the job board's other
// consumers. This service persists nothing; it only signals.
type Event struct {
	Type          string `json:"type"`
	UserID        string `json:"userId,omitempty"`
	JobID         string `json:"jobId,omitempty"`
	ApplicationID string `json:"applicationId,omitempty"`
	Interaction   string `json:"interaction,omitempty"`
	Timestamp     string `json:"timestamp"`
}

func New(eventType string) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// RedisPublisher publishes events on a pub/sub channel. When redis is not
// configured or unreachable it degrades to a warn-once no-op so the ack
// endpoints keep working.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger

	warnedUnavailable atomic.Bool
}

func NewRedisPublisher(cfg config.RedisConfig, logger *zap.Logger) *RedisPublisher {
	p := &RedisPublisher{channel: cfg.Channel, logger: logger}
	if cfg.Addr == "" {
		return p
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Warn("redis unavailable, event publishing disabled", zap.Error(err))
		}
		_ = client.Close()
		return p
	}

	p.client = client
	return p
}

func (p *RedisPublisher) Publish(ctx context.Context, evt Event) error {
	if p == nil || p.client == nil {
		return nil
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	if err := p.client.Publish(ctx, p.channel, b).Err(); err != nil {
		p.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}

func (p *RedisPublisher) warnUnavailableOnce(err error) {
	if p == nil || p.logger == nil {
		return
	}
	if p.warnedUnavailable.CompareAndSwap(false, true) {
		p.logger.Warn("redis publish failed, events may be dropped", zap.Error(err))
	}
}
