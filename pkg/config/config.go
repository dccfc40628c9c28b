package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"macclip/pkg/errors"
	"macclip/pkg/query"

	"gopkg.in/yaml.v3"
)

const (
	BackendOSAScript = "osascript"
	BackendSystem    = "system"

	DefaultCommand       = "osascript"
	DefaultServerName    = "MacOS Clipboard"
	DefaultServerVersion = "0.0.1"
)

// DefaultFormats is the probe order used when the config names none.
var DefaultFormats = []string{query.TextFormat, "PNGf", "DATA"}

// Config holds the complete configuration
type Config struct {
	Host     HostConfig    `json:"host" yaml:"host"`
	Formats  FormatsConfig `json:"formats" yaml:"formats"`
	Server   ServerConfig  `json:"server" yaml:"server"`
	LogLevel string        `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}

type HostConfig struct {
	// Backend is "osascript" or "system".
	Backend string `json:"backend" yaml:"backend"`
	// Command is the osascript binary, looked up in PATH when not absolute.
	Command string `json:"command" yaml:"command"`
	// Timeout bounds a single clipboard query. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

type FormatsConfig struct {
	// Preferred lists the formats to request, most preferred first.
	Preferred []string `json:"preferred" yaml:"preferred"`
}

type ServerConfig struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// Load reads the config file at path (or the default location when path is
// empty), applies environment overrides and defaults, and validates.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
		}
		path = p
	}
	return loadFromPath(path)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "macclip", "config.yaml"), nil
}

// Default returns a validated configuration built only from defaults.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := &Config{}

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(cfg)
	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		// No file: defaults and env vars only.
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// applyEnvironmentOverrides fills fields the file left empty
func applyEnvironmentOverrides(cfg *Config) {
	if cfg.Host.Backend == "" {
		cfg.Host.Backend = getEnv("MACCLIP_BACKEND", "")
	}
	if cfg.Host.Command == "" {
		cfg.Host.Command = getEnv("MACCLIP_OSASCRIPT", "")
	}
	if cfg.Host.Timeout == 0 {
		if v := os.Getenv("MACCLIP_TIMEOUT"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfg.Host.Timeout = d
			}
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = getEnv("MACCLIP_LOG_LEVEL", "")
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Host.Backend == "" {
		cfg.Host.Backend = defaultBackend()
	}
	if cfg.Host.Command == "" {
		cfg.Host.Command = DefaultCommand
	}
	if len(cfg.Formats.Preferred) == 0 {
		cfg.Formats.Preferred = append([]string(nil), DefaultFormats...)
	}
	if cfg.Server.Name == "" {
		cfg.Server.Name = DefaultServerName
	}
	if cfg.Server.Version == "" {
		cfg.Server.Version = DefaultServerVersion
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func defaultBackend() string {
	if runtime.GOOS == "darwin" {
		return BackendOSAScript
	}
	return BackendSystem
}

// validateConfig ensures all configuration fields hold usable values
func validateConfig(cfg *Config) error {
	switch cfg.Host.Backend {
	case BackendOSAScript, BackendSystem:
	default:
		return errors.ConfigError(fmt.Sprintf("unknown host backend %q. Use %q or %q", cfg.Host.Backend, BackendOSAScript, BackendSystem))
	}
	if cfg.Host.Timeout < 0 {
		return errors.ConfigError("host timeout must not be negative")
	}
	for _, f := range cfg.Formats.Preferred {
		if err := query.ValidateFormat(f); err != nil {
			return errors.ConfigError(fmt.Sprintf("invalid preferred format: %v", err))
		}
	}
	return nil
}
