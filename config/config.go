// Package config loads client settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAPIBaseURL = "http://localhost:8086"

// Config holds the runtime settings. Unlike a server, everything has a
// usable default: the client must start with no environment at all.
type Config struct {
	// APIBaseURL is the booking backend root, e.g. an API gateway host.
	APIBaseURL string
	// Token optionally overrides the stored bearer token.
	Token string
}

// Load reads MOVIEBOOK_* variables, after loading .env if one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIBaseURL: getenv("MOVIEBOOK_API_URL", defaultAPIBaseURL),
		Token:      strings.TrimSpace(os.Getenv("MOVIEBOOK_TOKEN")),
	}
}

func getenv(key string, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return strings.TrimRight(v, "/")
	}
	return fallback
}
