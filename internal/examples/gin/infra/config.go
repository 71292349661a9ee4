package infra

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the settings the example application reads at startup.
type Config struct {
	Port   string
	DBPath string
	Debug  bool
}

// LoadConfig reads .env (if present) and populates a Config from environment
// variables. Values already set in the environment win over the file.
func LoadConfig() Config {
	// Non-fatal: .env may not exist in production.
	_ = godotenv.Load()

	return Config{
		Port:   env("APP_PORT", "8080"),
		DBPath: env("DB_PATH", "./database.db"),
		Debug:  envBool("APP_DEBUG", false),
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
