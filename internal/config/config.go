package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FetchConfig holds settings for downloading remote URL items.
type FetchConfig struct {
	TimeoutSec int
	MaxSizeMB  int
}

// NotifyConfig holds desktop notification settings.
type NotifyConfig struct {
	Enabled bool
	AppName string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated once at startup from environment variables and passed
// explicitly to the components that need it; nothing reads the environment
// after Load returns.
type AppConfig struct {
	Port        string
	SaveDir     string
	AuthToken   string
	AllowedIPs  []string
	JPEGQuality int
	MaxUploadMB int
	Fetch       FetchConfig
	Notify      NotifyConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the .env file.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:        getEnv("PORT", "8000"),
		SaveDir:     getEnv("SAVE_DIR", "incoming"),
		AuthToken:   getEnv("AUTH_TOKEN", ""),
		AllowedIPs:  splitList(getEnv("ALLOWED_IPS", "")),
		JPEGQuality: getEnvInt("JPEG_QUALITY", 95),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 256),
		Fetch: FetchConfig{
			TimeoutSec: getEnvInt("FETCH_TIMEOUT_SEC", 30),
			MaxSizeMB:  getEnvInt("FETCH_MAX_SIZE_MB", 256),
		},
		Notify: NotifyConfig{
			Enabled: getEnvBool("NOTIFY_ENABLED", true),
			AppName: getEnv("NOTIFY_APP_NAME", "phonedrop"),
		},
	}

	if cfg.AuthToken == "" {
		return nil, fmt.Errorf("AUTH_TOKEN is required")
	}
	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		return nil, fmt.Errorf("JPEG_QUALITY must be between 1 and 100, got %d", cfg.JPEGQuality)
	}

	return cfg, nil
}

// splitList parses a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
