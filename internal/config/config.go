// Package config centralises configuration parsing for the roster service.
package config

import (
	"os"
	"strings"
)

// Config captures runtime configuration values for the roster service.
type Config struct {
	HTTPAddress  string
	StaticDir    string
	KafkaBrokers []string // empty disables event publishing
	EventsTopic  string
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress: getEnv("HTTP_ADDRESS", ":8080"),
		StaticDir:   getEnv("STATIC_DIR", "static"),
		EventsTopic: getEnv("ROSTER_EVENTS_TOPIC", "roster_events"),
	}

	cfg.KafkaBrokers = splitAndTrim(os.Getenv("KAFKA_BROKERS"))
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
