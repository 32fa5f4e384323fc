package config

// ServerConfig contains HTTP listener configuration
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port" validate:"gte=0,lte=65535"`
}

// SecurityConfig controls the request guard in front of /api/fleet
type SecurityConfig struct {
	// Token is the shared secret clients send; empty generates one per process
	Token string `yaml:"token"`
	// AllowedHost overrides the request host for origin checks (reverse proxies)
	AllowedHost string `yaml:"allowedHost" validate:"omitempty,hostname|ip"`
	// RequireOrigin rejects API calls without Origin or Referer
	RequireOrigin *bool `yaml:"requireOrigin"`
}

// RateLimitConfig is a per-client token bucket for /api/fleet
type RateLimitConfig struct {
	Disabled          bool    `yaml:"disabled"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond" validate:"gte=0"`
	Burst             int     `yaml:"burst" validate:"gte=0"`
}

// RegistryConfig selects the fleet dataset
type RegistryConfig struct {
	// Path to a YAML registry; empty uses the compiled-in dataset
	Path string `yaml:"path"`
}

// LoggingConfig contains slog settings
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// TelemetryConfig toggles OpenTelemetry HTTP instrumentation
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"serviceName"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Security  SecurityConfig  `yaml:"security"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
	Registry  RegistryConfig  `yaml:"registry"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// OriginRequired reports whether API calls must carry Origin or Referer
func (c SecurityConfig) OriginRequired() bool {
	return c.RequireOrigin == nil || *c.RequireOrigin
}
