package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-solo/backend/internal/service/bot"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	SearchDepth    int
	SearchParallel bool
	LogLevel       string
	LogFormat      string
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "5001")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Build allowed origins list (Frontend URL + CSV values)
	allowedOrigins := []string{frontendURL}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Search
	searchDepth := GetEnvAsInt("SEARCH_DEPTH", bot.DEFAULT_DEPTH)
	if searchDepth < 1 {
		log.Warn().Str("component", "config").Int("depth", searchDepth).Msg("SEARCH_DEPTH below 1, using 1")
		searchDepth = 1
	}

	return &Config{
		Port:           port,
		AllowedOrigins: allowedOrigins,
		SearchDepth:    searchDepth,
		SearchParallel: GetEnvAsBool("SEARCH_PARALLEL", false),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		LogFormat:      GetEnv("LOG_FORMAT", "console"),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("component", "config").Str("key", key).Str("value", valueStr).
			Msgf("invalid integer, using default: %d", defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("component", "config").Str("key", key).Str("value", valueStr).
			Msgf("invalid boolean, using default: %t", defaultValue)
		return defaultValue
	}
	return value
}
