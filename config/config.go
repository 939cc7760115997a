// file: config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting the server needs. It is loaded once in
// main and passed explicitly to the components that need it.
type Config struct {
	ListenAddr string
	MySQLDSN   string
	RedisAddr  string
	RedisPass  string

	JWTSecret     string
	NeynarAPIKey  string
	NeynarBaseURL string
	WebhookSecret string

	AllowlistPath string
}

// Load reads a .env file if present, then the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		MySQLDSN:      os.Getenv("MYSQL_DSN"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		NeynarAPIKey:  os.Getenv("NEYNAR_API_KEY"),
		NeynarBaseURL: getEnv("NEYNAR_BASE_URL", "https://api.neynar.com"),
		WebhookSecret: os.Getenv("NEYNAR_WEBHOOK_SECRET"),
		AllowlistPath: getEnv("ALLOWLIST_PATH", "allowlist.yaml"),
	}

	if cfg.MySQLDSN == "" {
		return nil, fmt.Errorf("MYSQL_DSN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
