package config

import (
	"fmt"
	"os"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	DatabaseURL  string
	JWTSecret    string
	GeminiAPIKey string
	GeminiModel  string
	Port         string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load reads configuration from environment variables into AppConfig.
// DATABASE_URL and JWT_SECRET are required; the rest have defaults.
func Load() error {
	AppConfig = Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		Port:         os.Getenv("PORT"),
	}

	if AppConfig.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	if AppConfig.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	if AppConfig.GeminiModel == "" {
		AppConfig.GeminiModel = "gemini-1.5-flash"
	}
	if AppConfig.Port == "" {
		AppConfig.Port = "3000"
	}

	return nil
}
