package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/planopay/asaas-bridge/internal/pkg/env"
)

var (
	client *redis.Client
	logger = zerolog.Nop()
	ctx    = context.Background()
)

const webhookSeenTTL = 24 * time.Hour

// Enabled reports whether the webhook dedup cache is configured.
func Enabled() bool {
	return env.GetEnv("CACHE_ENABLED", "false") == "true"
}

// SetupCache initializes the connection to the Redis-compatible cache server.
// The cache is optional; when disabled the webhook receiver skips dedup.
func SetupCache(log zerolog.Logger) {
	logger = log
	if !Enabled() {
		return
	}

	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Warn().Err(err).Str("addr", host+":"+port).Msg("could not connect to cache")
	} else {
		logger.Info().Str("addr", host+":"+port).Msg("connected to cache")
	}
}

// GetClient returns the Redis client instance, or nil when the cache is
// disabled.
func GetClient() *redis.Client {
	if client == nil && Enabled() {
		SetupCache(logger)
	}
	return client
}

// MarkWebhookSeen records a webhook event id and reports whether the same id
// was delivered before. With the cache disabled or the id empty, every
// delivery counts as the first.
func MarkWebhookSeen(eventID string) (bool, error) {
	c := GetClient()
	if c == nil || eventID == "" {
		return false, nil
	}
	created, err := c.SetNX(ctx, "webhook:asaas:"+eventID, 1, webhookSeenTTL).Result()
	if err != nil {
		return false, err
	}
	return !created, nil
}
