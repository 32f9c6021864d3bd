package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// StoreModeMongo persists reviews per user; StoreModeMemory keeps them
	// for the lifetime of the process only.
	StoreModeMongo  = "mongo"
	StoreModeMemory = "memory"
)

type Config struct {
	// Movie API Configuration
	MovieAPIKey       string
	MovieAPIBaseURL   string
	MovieImageBaseURL string

	// Database Configuration
	MongoURI string
	DBName   string

	// Review store mode: "mongo" or "memory"
	ReviewStore string

	// Security Configuration
	JWTSecret string

	// Server Configuration
	Port string
	Env  string
}

// LoadConfig loads the configuration from environment variables. An
// environment file under environments/ is applied first when present.
func LoadConfig() (*Config, error) {
	env := getEnvOrDefault("GO_ENV", "development")
	envFile := filepath.Join("environments", fmt.Sprintf(".env.%s", env))

	// Optional: plain env vars are enough in production.
	_ = godotenv.Load(envFile)

	cfg := &Config{
		MovieAPIKey:       getEnvOrDefault("MOVIE_API_KEY", ""),
		MovieAPIBaseURL:   getEnvOrDefault("MOVIE_API_BASE_URL", "https://api.themoviedb.org/3"),
		MovieImageBaseURL: getEnvOrDefault("MOVIE_IMAGE_BASE_URL", "https://image.tmdb.org/t/p"),

		MongoURI: getEnvOrDefault("MONGO_URI", ""),
		DBName:   getEnvOrDefault("DB_NAME", "cinecircle"),

		ReviewStore: getEnvOrDefault("REVIEW_STORE", StoreModeMongo),

		JWTSecret: getEnvOrDefault("JWT_SECRET", ""),

		Port: getEnvOrDefault("PORT", "8080"),
		Env:  env,
	}

	if cfg.ReviewStore != StoreModeMongo && cfg.ReviewStore != StoreModeMemory {
		return nil, fmt.Errorf("invalid REVIEW_STORE %q: must be %q or %q", cfg.ReviewStore, StoreModeMongo, StoreModeMemory)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.ReviewStore == StoreModeMongo && cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required when REVIEW_STORE=%s", StoreModeMongo)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
