package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DevJWTSecret signs tokens when JWT_SECRET is unset. Validate refuses it in
// production.
const DevJWTSecret = "dev-secret-change-me"

var ErrDevSecret = errors.New("JWT_SECRET must be set to a non-default value in production")

type Config struct {
	AppEnv         string
	Port           string
	DatabaseURL    string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins string
	RequireAuth    bool
	LogLevel       string
	AIAPIKey       string
	AIBaseURL      string
	AIModel        string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      getEnv("JWT_SECRET", DevJWTSecret),
		TokenTTL:       getDuration("TOKEN_TTL_MINUTES", 60),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:8000"),
		RequireAuth:    getBool("REQUIRE_AUTH", false),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AIAPIKey:       os.Getenv("AI_API_KEY"),
		AIBaseURL:      getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
		AIModel:        getEnv("AI_MODEL", "gpt-4o-mini"),
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate rejects settings that are unsafe for the configured environment.
func (c Config) Validate() error {
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == DevJWTSecret) {
		return ErrDevSecret
	}
	return nil
}

// Origins splits AllowedOrigins on commas, dropping blanks.
func (c Config) Origins() []string {
	var out []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getDuration(key string, fallbackMinutes int) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(fallbackMinutes) * time.Minute
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return time.Duration(fallbackMinutes) * time.Minute
	}
	return time.Duration(parsed) * time.Minute
}

func getBool(key string, fallback bool) bool {
	parsed, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}
