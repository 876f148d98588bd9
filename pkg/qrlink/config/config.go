package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all settings consumed by the service. Values come from the
// environment, with a .env file as an optional local override.
type Config struct {
	Host               string
	Port               string
	DatabasePath       string
	BaseURL            string
	RateLimitPerMinute int
	QRSize             int
	QRBrandingLogo     string
	SweepInterval      time.Duration
	DeleteSecret       string
}

func Load() *Config {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	return &Config{
		Host:               getEnv("HOST", "0.0.0.0"),
		Port:               getEnv("PORT", "8080"),
		DatabasePath:       getEnv("DATABASE_PATH", "data/qrlink.db"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8080"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		QRSize:             getEnvInt("QR_SIZE", 512),
		QRBrandingLogo:     getEnv("QR_BRANDING_LOGO", ""),
		SweepInterval:      time.Duration(getEnvInt("CLEANUP_INTERVAL_MINUTES", 60)) * time.Minute,
		DeleteSecret:       getEnv("DELETE_SECRET", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
