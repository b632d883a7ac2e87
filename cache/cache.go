package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"embedsvc/config"
	"embedsvc/types"
)

// Sentiment results rarely change for the same text; cache them for a day.
const sentimentTTL = 24 * time.Hour

const pingTimeout = 5 * time.Second

// Cache stores classifier output in Redis keyed by a hash of the normalized
// text. A nil *Cache is valid and disables caching; every method is
// nil-safe. Cache failures are logged, never surfaced: the classifier is the
// source of truth.
type Cache struct {
	rdb *redis.Client
	log zerolog.Logger
}

// New connects to Redis if an address is configured, returning nil
// otherwise. An unreachable Redis is reported but does not fail startup.
func New(cfg *config.CacheConfig, log zerolog.Logger) *Cache {
	if cfg == nil || cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, classification cache degraded")
	}

	return &Cache{rdb: rdb, log: log}
}

// NewWithClient wraps an existing Redis client, used by tests.
func NewWithClient(rdb *redis.Client, log zerolog.Logger) *Cache {
	return &Cache{rdb: rdb, log: log}
}

// GetSentiment returns cached classifier output for the text, if present.
func (c *Cache) GetSentiment(ctx context.Context, text string) ([]types.LabelScore, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, sentimentKey(text)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("sentiment cache read failed")
		}
		return nil, false
	}

	var scores []types.LabelScore
	if err := json.Unmarshal(raw, &scores); err != nil {
		c.log.Warn().Err(err).Msg("sentiment cache entry corrupt")
		return nil, false
	}
	return scores, true
}

// SetSentiment caches classifier output for the text.
func (c *Cache) SetSentiment(ctx context.Context, text string, scores []types.LabelScore) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(scores)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, sentimentKey(text), raw, sentimentTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("sentiment cache write failed")
	}
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

func sentimentKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "classify:" + hex.EncodeToString(sum[:])
}
