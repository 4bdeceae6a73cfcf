package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	JMA struct {
		BaseURL        string
		Timeout        time.Duration
		BreakerTimeout time.Duration
	}

	Output struct {
		Dir         string
		CityMapFile string
	}

	Server struct {
		Port            string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		RefreshSchedule string
	}
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// JMA endpoint configuration
	cfg.JMA.BaseURL = getEnv("JMA_BASE_URL", "https://www.jma.go.jp/bosai/forecast/data/forecast")
	cfg.JMA.Timeout = parseDuration(getEnv("HTTP_TIMEOUT", "10s"))
	cfg.JMA.BreakerTimeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))

	// Output configuration
	cfg.Output.Dir = getEnv("OUTPUT_DIR", "./calendars")
	cfg.Output.CityMapFile = getEnv("CITY_MAP_FILE", "cities.json")

	// Feed server configuration (serve mode only)
	cfg.Server.Port = getEnv("FIBER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("FIBER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("FIBER_WRITE_TIMEOUT", "10s"))
	cfg.Server.RefreshSchedule = getEnv("REFRESH_SCHEDULE", "0 6 * * *")

	return cfg, nil
}

// LoadCityMap reads the city-name to area-code mapping. Any read or parse
// failure degrades to an empty mapping; the caller decides what an empty
// run means.
func LoadCityMap(path string) map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		zap.L().Warn("Failed to read city map file",
			zap.String("path", path),
			zap.Error(err))
		return map[string]string{}
	}

	cities := map[string]string{}
	if err := json.Unmarshal(data, &cities); err != nil {
		zap.L().Warn("Failed to parse city map file",
			zap.String("path", path),
			zap.Error(err))
		return map[string]string{}
	}

	return cities
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}
