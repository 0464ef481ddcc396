package config

import (
	"os"
)

type Config struct {
	Port          string
	GinMode       string
	SessionSecret string

	// DBDriver selects the persistence backend: "sqlite" keeps everything
	// in a local file (or :memory:), "mysql"/"postgres" talk to a hosted
	// store. Both variants run the same board logic.
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	GeocodingBaseURL string
	ForecastBaseURL  string

	AllowedOrigins string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "kanban"),
		DBPassword: getEnv("DB_PASSWORD", "kanban"),
		DBName:     getEnv("DB_NAME", "personal_kanban"),
		SQLitePath: getEnv("SQLITE_PATH", "kanban.db"),

		GeocodingBaseURL: getEnv("GEOCODING_BASE_URL", "https://geocoding-api.open-meteo.com/v1"),
		ForecastBaseURL:  getEnv("FORECAST_BASE_URL", "https://api.open-meteo.com/v1"),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
