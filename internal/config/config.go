package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	CORSOrigins string

	// MongoDB
	MongoURI      string
	MongoDatabase string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// Kafka (comment events); empty brokers disables publishing
	KafkaBrokers      string
	KafkaCommentTopic string

	// Image upload grants
	ImageSignKey     string
	ImageBaseURL     string
	ImageGrantExpiry time.Duration
}

func Load() *Config {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "burger"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "24h")),

		KafkaBrokers:      getEnv("KAFKA_BROKERS", ""),
		KafkaCommentTopic: getEnv("KAFKA_COMMENT_TOPIC", "burger.comments"),

		ImageSignKey:     getEnv("IMAGE_SIGN_KEY", ""),
		ImageBaseURL:     getEnv("IMAGE_BASE_URL", "http://localhost:8080/images"),
		ImageGrantExpiry: parseDuration(getEnv("IMAGE_GRANT_EXPIRY", "15m")),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}
