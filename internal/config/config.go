package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// Storage
	// - "postgres": gorm over DATABASE_URL
	// - "dynamodb": the songs table in AWS_REGION
	// - "memory": process memory, bounded by MEMORY_STORE_LIMIT, for local dev
	// - "none": songs are generated but never stored
	StorageBackend   string
	DatabaseURL      string
	DynamoDBTable    string
	AWSRegion        string
	MemoryStoreLimit int // songs kept by the memory backend; the oldest unsaved is evicted first

	// Generation limits
	MaxConcurrentGenerations int

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from the upstream gateway
	AuthMode string
}

func Load() *Config {
	return &Config{
		Environment:              getEnv("ENVIRONMENT", "development"),
		Port:                     getEnv("PORT", "8080"),
		SentryDSN:                getEnv("SENTRY_DSN", ""),
		StorageBackend:           getEnv("STORAGE_BACKEND", "memory"),
		DatabaseURL:              getEnv("DATABASE_URL", ""),
		DynamoDBTable:            getEnv("DYNAMODB_TABLE", "ikovsky-songs"),
		AWSRegion:                getEnv("AWS_REGION", "eu-west-2"),
		MemoryStoreLimit:         getEnvInt("MEMORY_STORE_LIMIT", 1000),
		MaxConcurrentGenerations: getEnvInt("MAX_CONCURRENT_GENERATIONS", 8),
		AuthMode:                 getEnv("AUTH_MODE", "none"), // Default to no auth for self-hosted
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// IsGatewayMode returns true if running behind the auth gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

// IsProduction gates CloudWatch publishing
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
