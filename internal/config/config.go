package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
	Triage TriageConfig `mapstructure:"triage" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains the bearer-token settings for the API.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
}

// TriageConfig contains settings for the triage engine itself.
type TriageConfig struct {
	// DefaultMode is the selection mode a fresh board starts in.
	DefaultMode string `mapstructure:"default_mode" validate:"required,oneof=Category Length Chaos"`
	// ChaosSeed seeds Chaos-mode selection. Zero means unseeded.
	ChaosSeed uint64 `mapstructure:"chaos_seed"`
}
