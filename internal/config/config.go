// Package config loads quizmate settings from defaults, an optional YAML
// file and QUIZMATE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizmate/internal/api"
	"github.com/abhisek/quizmate/internal/host"
	"github.com/abhisek/quizmate/internal/locale"
)

const appDir = "quizmate"

// Config holds all client configuration.
type Config struct {
	API APIConfig `yaml:"api"`

	Host host.Config `yaml:"host"`

	// Language selects the message catalog ("en", "ru").
	Language string `yaml:"language"`

	// LogPath is the log file. "-" disables logging.
	LogPath string `yaml:"log_path"`
}

// APIConfig points the client at the quiz API.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each request, as a Go duration string. Empty or "0"
	// means no timeout.
	Timeout string `yaml:"timeout"`
}

// TimeoutDuration parses Timeout.
func (c APIConfig) TimeoutDuration() (time.Duration, error) {
	if strings.TrimSpace(c.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid api timeout %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("api timeout must not be negative, got %s", d)
	}
	return d, nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: api.DefaultBaseURL,
		},
		Language: locale.DefaultLanguage,
		LogPath:  DefaultLogPath(),
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDir, "config.yaml")
}

// DefaultLogPath returns the log file location under the user cache dir.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appDir+".log")
	}
	return filepath.Join(dir, appDir, appDir+".log")
}

// LoadFile reads YAML from path over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Load resolves the configuration. An explicit path must exist; otherwise
// the default path is read when present. Environment overrides are applied
// last.
func Load(path string, getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if path == "" {
		path = getenv("QUIZMATE_CONFIG")
	}

	cfg := DefaultConfig()
	switch {
	case path != "":
		loaded, err := LoadFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	default:
		if p := DefaultPath(); p != "" {
			if _, err := os.Stat(p); err == nil {
				loaded, err := LoadFile(p)
				if err != nil {
					return cfg, err
				}
				cfg = loaded
			}
		}
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from QUIZMATE_* variables that are set.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("QUIZMATE_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := getenv("QUIZMATE_API_TIMEOUT"); v != "" {
		c.API.Timeout = v
	}
	if v := getenv("QUIZMATE_LANG"); v != "" {
		c.Language = v
	}
	if v := getenv("QUIZMATE_LOG"); v != "" {
		c.LogPath = v
	}
	if v := getenv("QUIZMATE_HOST_WS_URL"); v != "" {
		c.Host.WebSocketURL = v
	}
	if v := getenv("QUIZMATE_TELEGRAM_TOKEN"); v != "" {
		c.Host.Telegram.Token = v
	}
	if v := getenv("QUIZMATE_TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("QUIZMATE_TELEGRAM_CHAT_ID must be an integer: %w", err)
		}
		c.Host.Telegram.ChatID = id
	}
	if v := getenv("QUIZMATE_TELEGRAM_API_ENDPOINT"); v != "" {
		c.Host.Telegram.APIEndpoint = v
	}
	return nil
}

// Validate checks the values that would otherwise fail late.
func (c Config) Validate() error {
	var errs []error

	if err := checkURL(c.API.BaseURL, "http", "https"); err != nil {
		errs = append(errs, fmt.Errorf("api base_url: %w", err))
	}
	if _, err := c.API.TimeoutDuration(); err != nil {
		errs = append(errs, err)
	}
	if !slices.Contains(locale.Languages(), c.Language) {
		errs = append(errs, fmt.Errorf("unsupported language %q (available: %s)",
			c.Language, strings.Join(locale.Languages(), ", ")))
	}
	if c.Host.WebSocketURL != "" {
		if err := checkURL(c.Host.WebSocketURL, "ws", "wss"); err != nil {
			errs = append(errs, fmt.Errorf("host websocket_url: %w", err))
		}
	}
	if c.Host.Telegram.Token != "" && c.Host.Telegram.ChatID == 0 {
		errs = append(errs, errors.New("host telegram chat_id is required when a token is set"))
	}

	return errors.Join(errs...)
}

func checkURL(raw string, schemes ...string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !slices.Contains(schemes, u.Scheme) {
		return fmt.Errorf("scheme must be one of %s, got %q", strings.Join(schemes, "/"), u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
