package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8001", cfg.Server.Port)
	assert.False(t, cfg.Server.Debug)
	assert.Contains(t, cfg.Database.URL, "postgres://")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DEBUG", "true")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/articles")
	t.Setenv("COHERE_API_KEY", "key-123")
	t.Setenv("EMBEDDING_DIM", "384")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("RETRY_INTERVAL", "10m")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, "postgres://u:p@db:5432/articles", cfg.Database.URL)
	assert.Equal(t, "key-123", cfg.Models.CohereAPIKey)
	assert.Equal(t, 384, cfg.Models.EmbeddingDim)
	assert.Equal(t, 3, cfg.Cache.RedisDB)
	assert.Equal(t, "10m", cfg.Worker.RetryInterval)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("EMBEDDING_DIM", "not-a-number")
	t.Setenv("DEBUG", "maybe")

	cfg := Load()

	assert.Equal(t, 0, cfg.Models.EmbeddingDim)
	assert.False(t, cfg.Server.Debug)
}
