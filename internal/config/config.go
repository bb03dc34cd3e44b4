package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Storage backend selection values for STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	HTTPAddr       string
	StorageBackend string
	UploadDir      string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string
}

func Load() (*Config, error) {
	// loads .env in dev
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		StorageBackend: getenv("STORAGE_BACKEND", BackendMemory),
		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSSLMode:      getenv("DB_SSLMODE", "disable"),
		DBTimezone:     getenv("DB_TIMEZONE", "UTC"),
	}

	switch cfg.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBName == "" {
			return nil, fmt.Errorf("postgres backend selected but DB env vars are not configured")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	return cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimezone,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
