package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultListingURL = "https://api.github.com/repos/tailwindlabs/heroicons/contents/optimized/24/outline"
	DefaultUserAgent  = "PHP Script"
	DefaultOutputPath = "heroicon-list.txt"
	DefaultKeyPrefix  = "icon-lists"
)

type Config struct {
	ListingURL   string
	UserAgent    string
	OutputPath   string
	Timeout      time.Duration
	ManifestPath string

	ApiURL     string
	AccessKey  string
	SecretKey  string
	BucketName string
	Region     string
	KeyPrefix  string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using environment variables only")
	}

	config := &Config{
		ListingURL:   getEnv("ICONLIST_URL", DefaultListingURL),
		UserAgent:    getEnv("ICONLIST_USER_AGENT", DefaultUserAgent),
		OutputPath:   getEnv("ICONLIST_OUTPUT", DefaultOutputPath),
		Timeout:      getSeconds("ICONLIST_TIMEOUT", 0),
		ManifestPath: getEnv("ICONLIST_MANIFEST", ""),
		ApiURL:       getEnv("API_URL", ""),
		AccessKey:    getEnv("ACCESS_KEY", ""),
		SecretKey:    getEnv("SECRET_KEY", ""),
		BucketName:   getEnv("BUCKET_NAME", ""),
		Region:       getEnv("REGION", ""),
		KeyPrefix:    getEnv("ICONLIST_PREFIX", DefaultKeyPrefix),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getSeconds reads a whole number of seconds. Unparseable or negative values
// fall back to the default with a warning.
func getSeconds(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		slog.Warn("ignoring invalid duration", "key", key, "value", raw)
		return defaultValue
	}
	return time.Duration(n) * time.Second
}
