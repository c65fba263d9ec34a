// Package config provides configuration management for the loan signing
// service. It loads configuration from environment variables with sensible
// defaults and validates it so the application starts safely.
//
// Environment Variables:
//
// Application Settings:
//   - PORT: Server port (default: 8080)
//   - LOG_LEVEL: Logging level (default: info)
//
// E-Signature Provider:
//   - ESIGN_BASE_URL: Provider API base URL (required)
//   - ESIGN_API_KEY: Provider API key (required)
//   - ESIGN_TEMPLATE_ID: Loan application template id (required to send documents)
//   - WEBHOOK_SECRET: Shared secret for webhook signature verification.
//     Deliberately not validated at startup: an unset secret is reported as a
//     per-request misconfiguration by the webhook handler, distinct from a
//     signature failure.
//
// Status Cache:
//   - STATUS_TTL: Lifetime of a completion entry (default: 10m)
//   - CACHE_BACKEND: "redis" or "memory" (default: memory)
//   - REDIS_ADDRESS: Redis server address (default: localhost:6379)
//   - REDIS_PASSWORD: Redis password
//   - REDIS_DB: Redis database number 0-15 (default: 0)
//   - REDIS_POOL_SIZE: Redis connection pool size (default: 10)
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values for the service.
// Load it with Load() and validate with Validate() before use.
type Config struct {
	// Application settings
	Port     string // Server port number
	LogLevel string // Logging level (debug, info, warn, error)

	// E-signature provider
	EsignBaseURL    string // Provider API base URL
	EsignAPIKey     string // Provider API key
	EsignTemplateID string // Template the loan application is created from
	WebhookSecret   string // Shared secret for webhook signatures

	// Status cache
	StatusTTL     string // Completion entry lifetime (e.g. "10m")
	CacheBackend  string // "redis" or "memory"
	RedisAddress  string // Redis server address (host:port)
	RedisPassword string // Redis authentication password
	RedisDB       string // Redis database number (0-15)
	RedisPoolSize string // Redis connection pool size
}

// Load creates a new Config instance with values loaded from environment
// variables, falling back to defaults where unset. Call Validate() on the
// result before using it.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		EsignBaseURL:    getEnv("ESIGN_BASE_URL", ""),
		EsignAPIKey:     getEnv("ESIGN_API_KEY", ""),
		EsignTemplateID: getEnv("ESIGN_TEMPLATE_ID", ""),
		WebhookSecret:   getEnv("WEBHOOK_SECRET", ""),

		StatusTTL:     getEnv("STATUS_TTL", "10m"),
		CacheBackend:  getEnv("CACHE_BACKEND", "memory"),
		RedisAddress:  getEnv("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnv("REDIS_DB", "0"),
		RedisPoolSize: getEnv("REDIS_POOL_SIZE", "10"),
	}
}

// getEnv retrieves an environment variable value or returns a default value if not set
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// StatusTTLDuration returns the parsed completion entry lifetime.
// Validate() guarantees the value parses; a zero Config falls back to 10m.
func (c *Config) StatusTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.StatusTTL)
	if err != nil || d <= 0 {
		return 10 * time.Minute
	}
	return d
}

// Validate checks that required fields are present and all values are valid.
// The webhook secret is intentionally excluded; see the package documentation.
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a valid port number between 1 and 65535")
	}

	if c.EsignBaseURL == "" {
		return fmt.Errorf("ESIGN_BASE_URL environment variable is required")
	}
	if c.EsignAPIKey == "" {
		return fmt.Errorf("ESIGN_API_KEY environment variable is required")
	}

	if _, err := time.ParseDuration(c.StatusTTL); err != nil {
		return fmt.Errorf("STATUS_TTL must be a valid duration (e.g. '10m'): %w", err)
	}

	switch c.CacheBackend {
	case "redis", "memory":
		// Valid backends
	default:
		return fmt.Errorf("CACHE_BACKEND must be 'redis' or 'memory'")
	}

	if c.CacheBackend == "redis" {
		if c.RedisAddress == "" {
			return fmt.Errorf("REDIS_ADDRESS is required when using the redis cache backend")
		}
		if db, err := strconv.Atoi(c.RedisDB); err != nil || db < 0 || db > 15 {
			return fmt.Errorf("REDIS_DB must be a number between 0 and 15")
		}
		if poolSize, err := strconv.Atoi(c.RedisPoolSize); err != nil || poolSize < 1 {
			return fmt.Errorf("REDIS_POOL_SIZE must be a positive number")
		}
	}

	return nil
}
