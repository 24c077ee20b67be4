package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// InsecureSessionSecret is the fallback signing key used when SESSION_SECRET
// is unset. Deployments must override it.
const InsecureSessionSecret = "dev-insecure-key-change-me"

// Config holds the application configuration.
type Config struct {
	ServerPort    int
	DatabasePath  string
	UploadPath    string // Base path for uploaded avatar files
	SessionSecret string
	Production    bool
}

// Load loads configuration from environment variables or sets defaults.
// A .env file in the working directory is applied first, if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:    port,
		DatabasePath:  getEnv("DATABASE_PATH", "./fitzone.db"),
		UploadPath:    getEnv("UPLOAD_PATH", "./uploads"),
		SessionSecret: getEnv("SESSION_SECRET", InsecureSessionSecret),
		Production:    getEnv("APP_ENV", "") == "production",
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
