package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	StoreDriverMongo  = "mongo"
	StoreDriverPebble = "pebble"
)

type Config struct {
	Port                 string
	Environment          string
	LogLevel             string
	StoreDriver          string
	MongoDBURI           string
	MongoDBDatabase      string
	PebbleDataDir        string
	CORSOrigins          []string
	CORSAllowCredentials bool
	Debug                bool
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                 getEnvWithDefault("PORT", "8080"),
		Environment:          getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:             getEnvWithDefault("LOG_LEVEL", "info"),
		StoreDriver:          getEnvWithDefault("STORE_DRIVER", StoreDriverPebble),
		MongoDBURI:           os.Getenv("MONGODB_URI"),
		MongoDBDatabase:      getEnvWithDefault("MONGODB_DATABASE", "eventsdb"),
		PebbleDataDir:        getEnvWithDefault("PEBBLE_DATA_DIR", "data/events"),
		CORSOrigins:          splitCSV(getEnvWithDefault("CORS_ORIGINS", "*")),
		CORSAllowCredentials: getEnvWithDefault("CORS_ALLOW_CREDENTIALS", "false") == "true",
		Debug:                getEnvWithDefault("DEBUG", "false") == "true",
	}

	switch cfg.StoreDriver {
	case StoreDriverMongo:
		if cfg.MongoDBURI == "" {
			return nil, fmt.Errorf("MONGODB_URI is required when STORE_DRIVER=%s", StoreDriverMongo)
		}
	case StoreDriverPebble:
		if cfg.PebbleDataDir == "" {
			return nil, fmt.Errorf("PEBBLE_DATA_DIR is required when STORE_DRIVER=%s", StoreDriverPebble)
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER: %s (expected %s or %s)", cfg.StoreDriver, StoreDriverMongo, StoreDriverPebble)
	}

	return cfg, nil
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowAllOrigins reports whether CORS should be wide open ("*").
func (c *Config) AllowAllOrigins() bool {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
