package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Run modes
const (
	ModeDev  = "DEV"
	ModeProd = "PROD"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	RunMode       string
	ServerAddress string

	// Graph database configuration
	BaseDBURL    string
	RootUser     string
	RootPassword string

	// Authentication
	JWTSecret       string
	Algorithm       string
	TokenTTLMinutes int
	TokenIssuer     string

	// CORS / cookies
	CORSAllowedOrigin string
	CookieDomain      string

	// Logging
	LogLevel string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		RunMode:       getEnv("API_RUN_MODE", ModeDev),
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),

		BaseDBURL:    getEnv("BASE_DB_URL", "http://circusdb:8529"),
		RootUser:     getEnv("ARANGO_ROOT_USER", "root"),
		RootPassword: getEnv("ARANGO_ROOT_PW", ""),

		JWTSecret:       getEnv("JWTSECRET", ""),
		Algorithm:       getEnv("ALGORITHM", "HS256"),
		TokenTTLMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 10080),
		TokenIssuer:     getEnv("TOKEN_ISSUER", "arangodb"),

		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "localhost"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
	cfg.CookieDomain = getEnv("DOMAIN", cfg.CORSAllowedOrigin)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present. A missing
// signing secret or admin credential is fatal in every run mode.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWTSECRET is required")
	}
	if c.RootPassword == "" {
		return fmt.Errorf("ARANGO_ROOT_PW is required")
	}
	if c.RunMode != ModeDev && c.RunMode != ModeProd {
		return fmt.Errorf("API_RUN_MODE must be %s or %s", ModeDev, ModeProd)
	}
	return nil
}

// TokenTTL returns the configured session token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.RunMode == ModeDev
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.RunMode == ModeProd
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
