package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	DatabaseDriver       string
	DatabaseURL          string
	JWTSecret            string
	JWTIssuer            string
	AccessTTLSeconds     int64
	LessonCacheDir       string
	LessonCacheExpiry    time.Duration
	MetricsDiskPath      string
	MetricsSampleSeconds int
	CorsOrigins          []string
	LogMode              string
	LogDir               string
	LogRetentionDays     int
	Port                 string
}

// Load reads the server configuration. It panics when a required variable
// is missing.
func Load() Config {
	cfg := LoadPartial()
	cfg.DatabaseURL = mustEnv("DATABASE_URL")
	cfg.JWTSecret = mustEnv("JWT_SECRET")
	return cfg
}

// LoadPartial reads every variable without enforcing required ones. Tools
// that take the DSN from flags use it and validate what they need.
func LoadPartial() Config {
	return Config{
		DatabaseDriver:       envOr("DATABASE_DRIVER", "pgx"),
		DatabaseURL:          envOr("DATABASE_URL", ""),
		JWTSecret:            envOr("JWT_SECRET", ""),
		JWTIssuer:            envOr("JWT_ISSUER", "goldenhand"),
		AccessTTLSeconds:     int64(envOrInt("ACCESS_TTL_SECONDS", 14400)),
		LessonCacheDir:       envOr("LESSON_CACHE_DIR", "storage/lesson_cache"),
		LessonCacheExpiry:    time.Duration(envOrInt("LESSON_CACHE_EXPIRY_SECONDS", 3600)) * time.Second,
		MetricsDiskPath:      envOr("METRICS_DISK_PATH", "storage"),
		MetricsSampleSeconds: envOrInt("METRICS_SAMPLE_INTERVAL", 5),
		CorsOrigins:          parseCSV(envOr("CORS_ORIGINS", "")),
		LogMode:              envOr("LOG_MODE", "dev"),
		LogDir:               envOr("LOG_DIR", "storage/logs"),
		LogRetentionDays:     clamp(envOrInt("LOG_RETENTION_DAYS", 7), 1, 7),
		Port:                 envOr("PORT", "8080"),
	}
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
