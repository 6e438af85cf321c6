package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL matches the local backend used during development.
const DefaultAPIBaseURL = "http://localhost:5000"

// RequestTimeout bounds every outgoing API call. There is no retry: a
// request fails once and the caller's fallback policy takes over.
const RequestTimeout = 5 * time.Second

type Config struct {
	APIBaseURL  string
	Port        string
	JWTSecret   string
	SessionFile string
}

// Load reads configuration from the environment, loading a .env file
// first when one exists.
func Load() *Config {
	// Missing .env is fine; production sets real environment variables.
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:  getenv("TOWNBOOK_API_URL", DefaultAPIBaseURL),
		Port:        getenv("PORT", "5000"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SessionFile: getenv("TOWNBOOK_SESSION_FILE", defaultSessionFile()),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".townbook/session.json"
	}
	return home + "/.townbook/session.json"
}
