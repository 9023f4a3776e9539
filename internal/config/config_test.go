package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "burger", cfg.MongoDatabase)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "burger.comments", cfg.KafkaCommentTopic)
	assert.Equal(t, 15*time.Minute, cfg.ImageGrantExpiry)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_DATABASE", "burger_test")
	t.Setenv("JWT_EXPIRY", "30m")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "burger_test", cfg.MongoDatabase)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, 15*time.Minute, parseDuration("nonsense"))
	assert.Equal(t, time.Hour, parseDuration("1h"))
}
