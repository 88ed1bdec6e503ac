// config.go - Handles configuration for the project

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct { // Config struct holds all configuration values
	DBDriver    string // "sqlite" or "postgres"
	DBPath      string // Path to the SQLite database file
	DatabaseURL string // Postgres DSN, used when DBDriver is postgres

	Port        string // HTTP listen port
	GinMode     string // debug, release or test
	FrontendURL string // Allowed CORS origin
	LogLevel    string // debug, info, warn, error

	JWTSecret string        // Secret key for JWT authentication
	JWTExpiry time.Duration // Lifetime of issued tokens

	CreateAdmin   bool   // Create a default admin on startup when none exists
	AdminName     string // Name of the default admin
	AdminEmail    string // Email of the default admin
	AdminPassword string // Password of the default admin
}

// Load reads config from environment variables or uses defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	return &Config{
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBPath:      getEnv("DB_PATH", "data.db"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		JWTSecret: getEnv("JWT_SECRET", "supersecret"),
		JWTExpiry: getEnvAsDuration("JWT_EXPIRY", 72*time.Hour),

		CreateAdmin:   getEnvAsBool("CREATE_ADMIN", false),
		AdminName:     getEnv("ADMIN_NAME", "Admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

// Validate checks values that would make the service misbehave at runtime.
func (c *Config) Validate() error {
	var problems []string

	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			problems = append(problems, "DB_PATH must be set for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL must be set for the postgres driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("unsupported DB_DRIVER %q", c.DBDriver))
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET must be set")
	}
	if c.GinMode == "release" && len(c.JWTSecret) < 32 {
		problems = append(problems, "JWT_SECRET must be at least 32 characters in release mode")
	}
	if c.CreateAdmin && len(c.AdminPassword) < 8 {
		problems = append(problems, "ADMIN_PASSWORD must be at least 8 characters when CREATE_ADMIN is set")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}
