package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server struct {
		Port     string
		GinMode  string
		LogLevel string
	}

	Storage struct {
		Type       string // memory | sqlite | postgres
		SQLitePath string
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	Auth struct {
		Secret       string
		PasswordHash string // bcrypt; empty disables auth entirely
	}

	// Org carries the constants interpolated into the catering email and its
	// cc line, plus the external room-reservation form.
	Org struct {
		CFOAPAL         string
		SupervisorName  string
		SupervisorPhone string
		SupervisorEmail string
		ReserveSpaceURL string
	}
}

// Load loads configuration from environment variables
func Load() *Config {
	_ = godotenv.Load()

	config := &Config{}

	config.Server.Port = getEnv("PORT", "8080")
	config.Server.GinMode = getEnv("GIN_MODE", "debug")
	config.Server.LogLevel = getEnv("LOG_LEVEL", "info")

	config.Storage.Type = getEnv("STORAGE_TYPE", "sqlite")
	config.Storage.SQLitePath = getEnv("SQLITE_PATH", "./outreach.db")

	config.DB.Host = getEnv("DB_HOST", "localhost")
	config.DB.Port = getEnv("DB_PORT", "5432")
	config.DB.User = getEnv("DB_USER", "outreach")
	config.DB.Password = getEnv("DB_PASSWORD", "outreach_password")
	config.DB.Name = getEnv("DB_NAME", "outreach_db")
	config.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	config.Auth.Secret = getEnv("AUTH_SECRET", "outreach-dev-secret")
	config.Auth.PasswordHash = getEnv("AUTH_PASSWORD_HASH", "")

	config.Org.CFOAPAL = getEnv("CFOAPAL", "")
	config.Org.SupervisorName = getEnv("SUPERVISOR_NAME", "")
	config.Org.SupervisorPhone = getEnv("SUPERVISOR_PHONE", "")
	config.Org.SupervisorEmail = getEnv("SUPERVISOR_EMAIL", "")
	config.Org.ReserveSpaceURL = getEnv("RESERVE_SPACE_URL",
		"https://illiniunion.illinois.edu/EventServices/SubmitRequest.aspx")

	return config
}

// GetDatabaseURL returns the database connection URL
func (c *Config) GetDatabaseURL() string {
	return "postgres://" + c.DB.User + ":" + c.DB.Password + "@" + c.DB.Host + ":" + c.DB.Port + "/" + c.DB.Name + "?sslmode=" + c.DB.SSLMode
}

// AuthEnabled reports whether the API requires a bearer token. A blank
// password hash means a single-user local install with no login step.
func (c *Config) AuthEnabled() bool {
	return c.Auth.PasswordHash != ""
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
