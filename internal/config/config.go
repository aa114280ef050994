package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	SheetsSubmitURL   string
	SheetsResponseURL string
	RedisURL          string
	Environment       string
	DashboardCacheTTL time.Duration
	SessionTTL        time.Duration
	Events            EventConfig
}

func LoadConfig() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "8080"),
		SheetsSubmitURL:   getEnv("SHEETS_SUBMIT_URL", ""),
		SheetsResponseURL: getEnv("SHEETS_RESPONSES_URL", ""),
		RedisURL:          getEnv("REDIS_URL", "redis://localhost:6379"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		DashboardCacheTTL: getDurationEnv("DASHBOARD_CACHE_TTL", 60*time.Second),
		SessionTTL:        getDurationEnv("SESSION_TTL", 24*time.Hour),
		Events: EventConfig{
			Enabled:   getBoolEnv("EVENTS_ENABLED", true),
			Publisher: getEnv("EVENTS_PUBLISHER", "channel"),
			TopicName: getEnv("EVENTS_TOPIC", "submissions"),
		},
	}, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
