package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test_value")
	defer os.Unsetenv("TEST_VAR")

	result := getEnv("TEST_VAR", "default_value")
	if result != "test_value" {
		t.Errorf("getEnv() = %s, want %s", result, "test_value")
	}

	result = getEnv("NON_EXISTENT_VAR", "default_value")
	if result != "default_value" {
		t.Errorf("getEnv() = %s, want %s", result, "default_value")
	}

	os.Setenv("EMPTY_VAR", "")
	defer os.Unsetenv("EMPTY_VAR")

	result = getEnv("EMPTY_VAR", "default_value")
	if result != "default_value" {
		t.Errorf("getEnv() = %s, want %s", result, "default_value")
	}
}

func TestGetSeconds(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"Unset", "", 7 * time.Second},
		{"Whole seconds", "30", 30 * time.Second},
		{"Zero disables", "0", 0},
		{"Negative", "-5", 7 * time.Second},
		{"Garbage", "soon", 7 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_SECONDS", tt.value)
			if got := getSeconds("TEST_SECONDS", 7*time.Second); got != tt.want {
				t.Errorf("getSeconds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ICONLIST_URL", "ICONLIST_USER_AGENT", "ICONLIST_OUTPUT", "ICONLIST_TIMEOUT",
		"ICONLIST_MANIFEST", "ICONLIST_PREFIX", "BUCKET_NAME",
	} {
		t.Setenv(key, "")
	}

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.ListingURL != DefaultListingURL {
		t.Errorf("config.ListingURL = %s, want %s", config.ListingURL, DefaultListingURL)
	}
	if config.UserAgent != "PHP Script" {
		t.Errorf("config.UserAgent = %s, want %s", config.UserAgent, "PHP Script")
	}
	if config.OutputPath != "heroicon-list.txt" {
		t.Errorf("config.OutputPath = %s, want %s", config.OutputPath, "heroicon-list.txt")
	}
	if config.Timeout != 0 {
		t.Errorf("config.Timeout = %v, want 0", config.Timeout)
	}
	if config.ManifestPath != "" {
		t.Errorf("config.ManifestPath = %s, want empty", config.ManifestPath)
	}
	if config.KeyPrefix != DefaultKeyPrefix {
		t.Errorf("config.KeyPrefix = %s, want %s", config.KeyPrefix, DefaultKeyPrefix)
	}
	if config.BucketName != "" {
		t.Errorf("config.BucketName = %s, want empty", config.BucketName)
	}
}

func TestLoadOverrides(t *testing.T) {
	testVars := map[string]string{
		"ICONLIST_URL":        "http://127.0.0.1:9999/listing",
		"ICONLIST_USER_AGENT": "iconlist-test",
		"ICONLIST_OUTPUT":     "out.txt",
		"ICONLIST_TIMEOUT":    "12",
		"ICONLIST_MANIFEST":   "sets.yaml",
		"ICONLIST_PREFIX":     "lists",
		"API_URL":             "https://test-api.example.com",
		"ACCESS_KEY":          "test-access-key",
		"SECRET_KEY":          "test-secret-key",
		"BUCKET_NAME":         "test-bucket",
		"REGION":              "test-region",
	}
	for key, value := range testVars {
		t.Setenv(key, value)
	}

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.ListingURL != testVars["ICONLIST_URL"] {
		t.Errorf("config.ListingURL = %s, want %s", config.ListingURL, testVars["ICONLIST_URL"])
	}
	if config.UserAgent != testVars["ICONLIST_USER_AGENT"] {
		t.Errorf("config.UserAgent = %s, want %s", config.UserAgent, testVars["ICONLIST_USER_AGENT"])
	}
	if config.OutputPath != testVars["ICONLIST_OUTPUT"] {
		t.Errorf("config.OutputPath = %s, want %s", config.OutputPath, testVars["ICONLIST_OUTPUT"])
	}
	if config.Timeout != 12*time.Second {
		t.Errorf("config.Timeout = %v, want %v", config.Timeout, 12*time.Second)
	}
	if config.ManifestPath != testVars["ICONLIST_MANIFEST"] {
		t.Errorf("config.ManifestPath = %s, want %s", config.ManifestPath, testVars["ICONLIST_MANIFEST"])
	}
	if config.KeyPrefix != testVars["ICONLIST_PREFIX"] {
		t.Errorf("config.KeyPrefix = %s, want %s", config.KeyPrefix, testVars["ICONLIST_PREFIX"])
	}
	if config.ApiURL != testVars["API_URL"] {
		t.Errorf("config.ApiURL = %s, want %s", config.ApiURL, testVars["API_URL"])
	}
	if config.AccessKey != testVars["ACCESS_KEY"] {
		t.Errorf("config.AccessKey = %s, want %s", config.AccessKey, testVars["ACCESS_KEY"])
	}
	if config.SecretKey != testVars["SECRET_KEY"] {
		t.Errorf("config.SecretKey = %s, want %s", config.SecretKey, testVars["SECRET_KEY"])
	}
	if config.BucketName != testVars["BUCKET_NAME"] {
		t.Errorf("config.BucketName = %s, want %s", config.BucketName, testVars["BUCKET_NAME"])
	}
	if config.Region != testVars["REGION"] {
		t.Errorf("config.Region = %s, want %s", config.Region, testVars["REGION"])
	}
}
