package infra

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	DatabaseURL      string
	JWTSecret        string
	GeoIPDBPath      string
	StoragePath      string
	CORSOrigins      []string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int

	// Payment reconciliation policy. Operators tune these without a code
	// change; the defaults mirror the organisation's standing rules.
	DueDayOfMonth int
	ReminderDays  []int // days before the due date that trigger a reminder
	OverdueDays   []int // days after the due date that trigger a due notice
	SweepCronSpec string
	DBConnRetries int
	DBConnBackoff time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		GeoIPDBPath:      os.Getenv("GEOIP_DB_PATH"),
		StoragePath:      getEnv("STORAGE_PATH", "./storage"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		DueDayOfMonth:    getEnvInt("DUE_DAY_OF_MONTH", 15),
		SweepCronSpec:    getEnv("SWEEP_CRON_SPEC", "0 7 * * *"),
		DBConnRetries:    getEnvInt("DB_CONN_RETRIES", 5),
		DBConnBackoff:    time.Second * time.Duration(getEnvInt("DB_CONN_BACKOFF_SECONDS", 3)),
	}

	var err error
	if cfg.ReminderDays, err = parseDayOffsets(getEnv("REMINDER_OFFSETS", "7,3")); err != nil {
		return nil, fmt.Errorf("REMINDER_OFFSETS: %w", err)
	}
	if cfg.OverdueDays, err = parseDayOffsets(getEnv("OVERDUE_OFFSETS", "1,7,15,30")); err != nil {
		return nil, fmt.Errorf("OVERDUE_OFFSETS: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if cfg.DueDayOfMonth < 1 || cfg.DueDayOfMonth > 28 {
		return nil, fmt.Errorf("DUE_DAY_OF_MONTH must be between 1 and 28, got %d", cfg.DueDayOfMonth)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseDayOffsets(raw string) ([]int, error) {
	parts := splitCSV(raw)
	if len(parts) == 0 {
		return nil, fmt.Errorf("at least one day offset is required")
	}
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid day offset %q", part)
		}
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}
