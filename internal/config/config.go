// Package config loads reshuffle-admin settings from defaults, an optional
// YAML file, a .env file and RESHUFFLE_* environment variables, in that
// order of increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all client configuration.
type Config struct {
	Endpoint EndpointConfig `yaml:"endpoint"`

	// Debounce is the quiet window applied to parent-field changes.
	// Default: 100ms.
	Debounce time.Duration `yaml:"debounce"`

	// DBPath is the fetch-history database. Empty means the XDG default.
	DBPath string `yaml:"db"`

	// LogFile receives slog output. Empty means the XDG default.
	LogFile string `yaml:"log_file"`

	// LogLevel is one of debug, info, warn, error. Default: info.
	LogLevel string `yaml:"log_level"`
}

// EndpointConfig describes how to reach the admin validation endpoints.
type EndpointConfig struct {
	// BaseURL is the admin site root, e.g. "https://exams.example.org".
	BaseURL string `yaml:"base_url"`

	PartPath string `yaml:"part_path"` // Default: "/validation_part/"
	TaskPath string `yaml:"task_path"` // Default: "/validation_task/"

	// CSRFToken is sent as the csrfmiddlewaretoken query parameter.
	CSRFToken string `yaml:"csrf_token"`

	// SessionID is the Django sessionid cookie of a logged-in staff user.
	SessionID string `yaml:"session_id"`

	// Timeout bounds a single request. Zero leaves the transport default.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint: EndpointConfig{
			BaseURL:  "http://localhost:8000",
			PartPath: "/validation_part/",
			TaskPath: "/validation_task/",
		},
		Debounce: 100 * time.Millisecond,
		LogLevel: "info",
	}
}

// Load builds a Config. path may be empty; a missing file at the default
// location is not an error, a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	// A missing .env is normal outside development.
	_ = godotenv.Load(".env")

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("RESHUFFLE_BASE_URL"); v != "" {
		c.Endpoint.BaseURL = v
	}
	if v := os.Getenv("RESHUFFLE_PART_PATH"); v != "" {
		c.Endpoint.PartPath = v
	}
	if v := os.Getenv("RESHUFFLE_TASK_PATH"); v != "" {
		c.Endpoint.TaskPath = v
	}
	if v := os.Getenv("RESHUFFLE_CSRF_TOKEN"); v != "" {
		c.Endpoint.CSRFToken = v
	}
	if v := os.Getenv("RESHUFFLE_SESSION_ID"); v != "" {
		c.Endpoint.SessionID = v
	}
	if v := os.Getenv("RESHUFFLE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse RESHUFFLE_TIMEOUT: %w", err)
		}
		c.Endpoint.Timeout = d
	}
	if v := os.Getenv("RESHUFFLE_DEBOUNCE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse RESHUFFLE_DEBOUNCE: %w", err)
		}
		c.Debounce = d
	}
	if v := os.Getenv("RESHUFFLE_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("RESHUFFLE_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("RESHUFFLE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks that the endpoint settings are usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.Endpoint.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.Endpoint.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL %q must use http or https", c.Endpoint.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base URL %q has no host", c.Endpoint.BaseURL)
	}
	if c.Endpoint.PartPath == "" || c.Endpoint.TaskPath == "" {
		return errors.New("part and task validation paths are required")
	}
	if c.Endpoint.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Endpoint.Timeout)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative, got %s", c.Debounce)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
	return nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/reshuffle-admin/config.yaml,
// falling back to ~/.config.
func DefaultConfigPath() (string, error) {
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "reshuffle-admin", "config.yaml"), nil
}

// DefaultLogPath returns $XDG_STATE_HOME/reshuffle-admin/admin.log,
// falling back to ~/.local/state.
func DefaultLogPath() (string, error) {
	dir, err := xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "reshuffle-admin", "admin.log"), nil
}

func xdgDir(env, fallback string) (string, error) {
	if d := os.Getenv(env); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, fallback), nil
}
