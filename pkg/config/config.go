package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreBackendFirestore = "firestore"
	StoreBackendMemory    = "memory"

	minUploadBytes = 2 * 1024 * 1024
	maxUploadBytes = 5 * 1024 * 1024
)

type Config struct {
	ServerPort         string
	Environment        string
	FirebaseProject    string
	FirebaseAPIKey     string
	ServiceAccountJSON string
	ServiceAccountPath string
	StorageBucket      string
	StoreBackend       string
	RedisURL           string
	ReferenceCacheTTL  time.Duration
	UploadMaxBytes     int64
	WriteRateLimit     string
	LogFile            string
	CORSOrigins        []string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		FirebaseProject:    getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseAPIKey:     getEnv("FIREBASE_API_KEY", ""),
		ServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		ServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
		StorageBucket:      getEnv("STORAGE_BUCKET", ""),
		StoreBackend:       getEnv("STORE_BACKEND", StoreBackendFirestore),
		RedisURL:           getEnv("REDIS_URL", ""),
		ReferenceCacheTTL:  getEnvAsDuration("REFERENCE_CACHE_TTL", 10*time.Minute),
		UploadMaxBytes:     getEnvAsInt64("UPLOAD_MAX_BYTES", maxUploadBytes),
		WriteRateLimit:     getEnv("RATE_LIMIT_WRITES", "10-M"),
		LogFile:            getEnv("LOG_FILE", ""),
		CORSOrigins:        getEnvAsList("CORS_ORIGINS", []string{"*"}),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case StoreBackendFirestore, StoreBackendMemory:
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreBackendFirestore, StoreBackendMemory, c.StoreBackend)
	}

	if c.FirebaseProject == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}

	if c.UploadMaxBytes < minUploadBytes || c.UploadMaxBytes > maxUploadBytes {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be between %d and %d", minUploadBytes, maxUploadBytes)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}

	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
