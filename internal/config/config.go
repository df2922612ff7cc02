package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration, loaded from the
// environment (with an optional .env file for local development).
type Config struct {
	Port  int
	DBURL string

	Nager     NagerConfig
	Retention RetentionConfig
}

// NagerConfig configures the public holiday source.
type NagerConfig struct {
	BaseURL     string
	CountryCode string
	// UseStaticMock selects the offline static provider instead of the
	// remote Nager client.
	UseStaticMock bool
}

// RetentionConfig configures the periodic cleanup of past reminders.
type RetentionConfig struct {
	// Days a reminder is kept past its date before the sweep removes it.
	Days int
	// CronSpec for the sweep job, in six-field cron format with seconds.
	CronSpec string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine; everything has env defaults.
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}

	retentionDays, err := strconv.Atoi(getEnvOrDefault("REMINDER_RETENTION_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_RETENTION_DAYS value: %w", err)
	}

	return &Config{
		Port:  port,
		DBURL: getEnvOrDefault("REMINDERS_DB_URL", "reminders.db"),
		Nager: NagerConfig{
			BaseURL:       getEnvOrDefault("NAGER_BASE_URL", "https://date.nager.at/api/v3"),
			CountryCode:   getEnvOrDefault("HOLIDAY_COUNTRY_CODE", "LT"),
			UseStaticMock: getEnvOrDefault("HOLIDAY_USE_STATIC_MOCK", "false") == "true",
		},
		Retention: RetentionConfig{
			Days:     retentionDays,
			CronSpec: getEnvOrDefault("REMINDER_CLEANUP_CRON", "0 0 4 * * *"),
		},
	}, nil
}

// getEnvOrDefault returns the trimmed environment variable value, or the
// default when unset or blank.
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
