// Package config defines the global configuration for the huntcast service.
// Configuration is loaded once at process initialization and is immutable
// thereafter. Values come from the OS environment (optionally seeded by a
// .env file); any missing required value or invalid format aborts startup
// rather than allowing a half-configured service to run.
package config

import "time"

// Config is the top-level configuration struct. Sub-components receive only
// the specific subsets they require.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev staging prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"huntcast"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Server   ServerConfig
	Profiles ProfilesConfig
	Weather  WeatherConfig
	Database DatabaseConfig
	Security SecurityConfig
	Outlook  OutlookConfig

	// Build metadata, injected via ldflags rather than the environment.
	Build BuildInfo
}

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// ProfilesConfig controls the species/location table source.
type ProfilesConfig struct {
	// OverridePath points at an optional YAML file layered over the builtin
	// tables. Empty disables overrides; a malformed file is fatal.
	OverridePath string `envconfig:"PROFILE_OVERRIDE_FILE"`
}

// WeatherConfig holds the upstream weather provider settings.
type WeatherConfig struct {
	BaseURL   string        `envconfig:"WEATHER_BASE_URL" default:"https://api.open-meteo.com" validate:"required,url"`
	Timeout   time.Duration `envconfig:"WEATHER_TIMEOUT" default:"10s"`
	UserAgent string        `envconfig:"WEATHER_USER_AGENT" default:"huntcast/1.0"`
	Latitude  float64       `envconfig:"WEATHER_LATITUDE" default:"44.8942"`
	Longitude float64       `envconfig:"WEATHER_LONGITUDE" default:"-71.4962"`
}

// DatabaseConfig holds journal database connection and pool tuning. An empty
// URL disables the journal feature entirely.
type DatabaseConfig struct {
	URL               string        `envconfig:"DATABASE_URL"`
	MaxConns          int32         `envconfig:"DB_MAX_CONNS" default:"8"`
	MinConns          int32         `envconfig:"DB_MIN_CONNS" default:"1"`
	MaxConnLifetime   time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"30m"`
	HealthCheckPeriod time.Duration `envconfig:"DB_HEALTH_CHECK_PERIOD" default:"1m"`
}

// Enabled reports whether the journal database is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.URL != ""
}

// SecurityConfig holds CORS settings.
type SecurityConfig struct {
	CorsAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// OutlookConfig bounds the multi-day outlook computation.
type OutlookConfig struct {
	MaxDays     int `envconfig:"OUTLOOK_MAX_DAYS" default:"7" validate:"min=1,max=14"`
	Concurrency int `envconfig:"OUTLOOK_CONCURRENCY" default:"4" validate:"min=1,max=16"`
}
