package config

import (
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables (godotenv loads .env in development).
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Parking ParkingConfig
	LLM     LLMConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// ParkingConfig carries the business constants of the complex.
type ParkingConfig struct {
	Capacity             int // total visitor parking spots
	ListCap              int // max rows the assistant renders in one answer
	LowAvailabilityBelow int // available spots below this => LOW AVAILABILITY
}

// LLMConfig configures the generative backend for the assistant.
// An empty APIKey means the backend is unavailable; templated intents still work.
type LLMConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Parking Manager API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Parking: ParkingConfig{
			Capacity:             getEnvInt("PARKING_CAPACITY", 105),
			ListCap:              getEnvInt("PARKING_LIST_CAP", 20),
			LowAvailabilityBelow: getEnvInt("PARKING_LOW_AVAILABILITY", 20),
		},
		LLM: LLMConfig{
			APIKey:         getEnv("LLM_API_KEY", ""),
			BaseURL:        getEnv("LLM_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai"),
			Model:          getEnv("LLM_MODEL", "gemini-1.5-flash"),
			TimeoutSeconds: getEnvInt("LLM_TIMEOUT_SECONDS", 30),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
