package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
	Store  StoreConfig  `mapstructure:"store"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds how long in-flight requests may drain on shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=16"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// StoreConfig contains settings for the in-memory task store.
type StoreConfig struct {
	// SeedSampleTask inserts a single sample task on startup.
	SeedSampleTask bool `mapstructure:"seed_sample_task"`
}

// DefaultJWTSecret is the shared demo secret used when none is configured.
// Anyone who knows it can mint tokens, so deployments must override it.
const DefaultJWTSecret = "osumare-task-secret"
