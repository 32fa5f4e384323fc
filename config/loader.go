package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config = Default()

var defaultPaths = []string{"config.yml", "./config/config.yml"}

const (
	DefaultHost        = "127.0.0.1"
	DefaultPort        = 8000
	DefaultRPS         = 5
	DefaultServiceName = "busfleet"
)

// Default returns the configuration used when no file is present
func Default() AppConfig {
	var cfg AppConfig
	applyDefaults(&cfg)
	return cfg
}

// LoadAppConfig loads, validates and installs the configuration as Config.
// An empty path searches config.yml and ./config/config.yml and falls back to
// defaults when neither exists; an explicit path must exist.
func LoadAppConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load is LoadAppConfig without touching the global
func Load(path string) (AppConfig, error) {
	data, err := readConfig(path)
	if err != nil {
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("validate config: %w", err)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func readConfig(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	for _, p := range defaultPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("BUSFLEET_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BUSFLEET_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("BUSFLEET_TOKEN"); v != "" {
		cfg.Security.Token = v
	}
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = DefaultRPS
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = max(1, int(2*cfg.RateLimit.RequestsPerSecond))
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = DefaultServiceName
	}
}

// Addr returns host:port for the HTTP listener
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
