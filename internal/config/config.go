package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/finance-app/cli/internal/api"
)

const (
	DefaultAPIURL = api.DefaultBaseURL
	DefaultLocale = "hu"
)

// EnvFile is the dotenv file read from the working directory.
var EnvFile = ".env"

var validate = validator.New()

// Config holds CLI configuration stored at ~/.finance/config.
type Config struct {
	APIURL         string        `yaml:"api_url" validate:"required,url"`
	Locale         string        `yaml:"locale" validate:"required,oneof=hu en"`
	RequestTimeout time.Duration `yaml:"request_timeout,omitempty"`
	LogFile        string        `yaml:"log_file,omitempty"`
	LogLevel       string        `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

// Keys lists the settings accepted by Set, in display order.
var Keys = []string{"api_url", "locale", "request_timeout", "log_file", "log_level"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIURL: DefaultAPIURL,
		Locale: DefaultLocale,
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".finance", "config")
}

// Load builds the effective config from defaults, the config file and the
// environment (process env first, then EnvFile). A missing file is not an
// error; an insecure or unparsable one is.
func Load() (*Config, error) {
	cfg := Default()

	fileCfg, err := loadFile(Path())
	if err != nil {
		return nil, err
	}
	if fileCfg != nil {
		cfg.merge(fileCfg)
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads only the config file, falling back to defaults when it
// does not exist. Used when writing settings back to disk.
func LoadFile() (*Config, error) {
	cfg := Default()
	fileCfg, err := loadFile(Path())
	if err != nil {
		return nil, err
	}
	if fileCfg != nil {
		cfg.merge(fileCfg)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat config: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) merge(other *Config) {
	if other.APIURL != "" {
		c.APIURL = other.APIURL
	}
	if other.Locale != "" {
		c.Locale = other.Locale
	}
	if other.RequestTimeout != 0 {
		c.RequestTimeout = other.RequestTimeout
	}
	if other.LogFile != "" {
		c.LogFile = other.LogFile
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

func (c *Config) loadEnv() error {
	dotenv, err := godotenv.Read(EnvFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read %s: %w", EnvFile, err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	for _, binding := range []struct {
		env string
		key string
	}{
		{"FINANCE_API_URL", "api_url"},
		{"FINANCE_LOCALE", "locale"},
		{"FINANCE_REQUEST_TIMEOUT", "request_timeout"},
		{"FINANCE_LOG_FILE", "log_file"},
		{"FINANCE_LOG_LEVEL", "log_level"},
	} {
		value, ok := lookup(binding.env)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		if err := c.Set(binding.key, value); err != nil {
			return fmt.Errorf("%s: %w", binding.env, err)
		}
	}
	return nil
}

// RegisterFlags adds the config override flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("api-url", DefaultAPIURL, "Finance App API base URL")
	fs.String("locale", DefaultLocale, "display language (hu, en)")
	fs.Duration("timeout", 0, "health request timeout (0 waits indefinitely)")
	fs.String("log-file", "", "write logs to this file")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
}

// ApplyFlags overrides settings with flags the user set explicitly.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	for _, binding := range []struct {
		flag string
		key  string
	}{
		{"api-url", "api_url"},
		{"locale", "locale"},
		{"timeout", "request_timeout"},
		{"log-file", "log_file"},
		{"log-level", "log_level"},
	} {
		f := fs.Lookup(binding.flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := c.Set(binding.key, f.Value.String()); err != nil {
			return fmt.Errorf("--%s: %w", binding.flag, err)
		}
	}
	return nil
}

// Set assigns a single setting by its config file key.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "api_url":
		c.APIURL = strings.TrimRight(value, "/")
	case "locale":
		c.Locale = strings.ToLower(value)
	case "request_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parse request_timeout: %w", err)
		}
		c.RequestTimeout = d
	case "log_file":
		c.LogFile = value
	case "log_level":
		c.LogLevel = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown config key %q (want one of %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Validate checks the effective configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid config: api_url must be an absolute http(s) URL, got %q", c.APIURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("invalid config: request_timeout must not be negative")
	}
	return nil
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return os.Chmod(path, 0600)
}
