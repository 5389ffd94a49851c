package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching for paths ending in "/")
	Method string        // HTTP method
	Limit  int           // Maximum requests per window; <= 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	EndpointConfigs []EndpointConfig
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits for the
// marketplace API.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Matching evaluates the full catalog per request.
		{Path: "/campaigns/matched", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},

		// Write operations.
		{Path: "/campaigns", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/creators/", Method: "PUT", Limit: 300, Window: time.Minute, Burst: 60},
		{Path: "/conversations/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/notifications/", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},

		// Admin aggregation fans out several queries per request.
		{Path: "/admin/", Method: "GET", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

// match resolves a request to its endpoint configuration. Health checks
// are never limited; unmatched routes use the global default.
func (c *Config) match(path, method string) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return nil
	}

	for i := range c.EndpointConfigs {
		ec := &c.EndpointConfigs[i]
		if ec.Path == path && ec.Method == method {
			return ec
		}
	}
	for i := range c.EndpointConfigs {
		ec := &c.EndpointConfigs[i]
		if ec.Method == method && strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			return ec
		}
	}

	return &EndpointConfig{
		Path:   path,
		Limit:  c.DefaultLimit,
		Window: c.DefaultWindow,
		Burst:  c.DefaultLimit,
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
