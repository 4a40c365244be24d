package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the stagiaire client.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Search  SearchConfig
	Output  OutputConfig
	Log     LogConfig
}

// APIConfig locates the platform backend.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration // per-request timeout
}

// SessionConfig controls where the login token and trainee ID persist.
type SessionConfig struct {
	Path string `yaml:"path"` // SQLite file
}

// SearchConfig controls where searches navigate.
type SearchConfig struct {
	ResultsPage string `yaml:"results_page"`
	OpenBrowser bool   `yaml:"open_browser"`
}

// OutputConfig selects how regions are rendered.
type OutputConfig struct {
	Format string `yaml:"format"` // "terminal" or "html"
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

const (
	defaultBaseURL     = "http://127.0.0.1:8000"
	defaultTimeout     = 10 * time.Second
	defaultSessionPath = ".stagiaire/session.db"
	defaultResultsPage = "search_results.html"
)

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	API     rawAPIConfig  `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Search  SearchConfig  `yaml:"search"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

type rawAPIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// overrides are read from the environment after the file. Empty means unset.
type overrides struct {
	BaseURL     string `env:"STAGIAIRE_API_BASE_URL"`
	Timeout     string `env:"STAGIAIRE_API_TIMEOUT"`
	SessionPath string `env:"STAGIAIRE_SESSION_PATH"`
	ResultsPage string `env:"STAGIAIRE_SEARCH_RESULTS_PAGE"`
	OpenBrowser string `env:"STAGIAIRE_SEARCH_OPEN_BROWSER"`
	Format      string `env:"STAGIAIRE_OUTPUT_FORMAT"`
	LogLevel    string `env:"STAGIAIRE_LOG_LEVEL"`
	LogFormat   string `env:"STAGIAIRE_LOG_FORMAT"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		API:     APIConfig{BaseURL: defaultBaseURL, Timeout: defaultTimeout},
		Session: SessionConfig{Path: defaultSessionPath},
		Search:  SearchConfig{ResultsPage: defaultResultsPage},
		Output:  OutputConfig{Format: "terminal"},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads and parses the YAML config file at path, applies STAGIAIRE_*
// environment overrides, validates it, and returns Config. When optional is
// true a missing file is not an error and defaults are used instead.
func Load(path string, optional bool) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	raw, err := readRaw(path, optional)
	if err != nil {
		return nil, err
	}

	var ov overrides
	if err := env.Load(&ov, nil); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := ov.apply(raw); err != nil {
		return nil, err
	}

	cfg := Default()
	if raw.API.BaseURL != "" {
		cfg.API.BaseURL = raw.API.BaseURL
	}
	if raw.API.Timeout != "" {
		cfg.API.Timeout, err = time.ParseDuration(raw.API.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse api.timeout %q: %w", raw.API.Timeout, err)
		}
	}
	if raw.Session.Path != "" {
		cfg.Session.Path = raw.Session.Path
	}
	if raw.Search.ResultsPage != "" {
		cfg.Search.ResultsPage = raw.Search.ResultsPage
	}
	cfg.Search.OpenBrowser = raw.Search.OpenBrowser
	if raw.Output.Format != "" {
		cfg.Output.Format = strings.ToLower(raw.Output.Format)
	}
	if raw.Log.Level != "" {
		cfg.Log.Level = strings.ToLower(raw.Log.Level)
	}
	if raw.Log.Format != "" {
		cfg.Log.Format = strings.ToLower(raw.Log.Format)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readRaw(path string, optional bool) (*rawConfig, error) {
	raw := &rawConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return raw, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return raw, nil
}

func (ov overrides) apply(raw *rawConfig) error {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&raw.API.BaseURL, ov.BaseURL)
	set(&raw.API.Timeout, ov.Timeout)
	set(&raw.Session.Path, ov.SessionPath)
	set(&raw.Search.ResultsPage, ov.ResultsPage)
	set(&raw.Output.Format, ov.Format)
	set(&raw.Log.Level, ov.LogLevel)
	set(&raw.Log.Format, ov.LogFormat)

	if ov.OpenBrowser != "" {
		b, err := strconv.ParseBool(ov.OpenBrowser)
		if err != nil {
			return fmt.Errorf("parse STAGIAIRE_SEARCH_OPEN_BROWSER %q: %w", ov.OpenBrowser, err)
		}
		raw.Search.OpenBrowser = b
	}
	return nil
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute http(s) URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %v", cfg.API.Timeout)
	}

	switch cfg.Output.Format {
	case "terminal", "html":
	default:
		return fmt.Errorf("output.format must be \"terminal\" or \"html\", got %q", cfg.Output.Format)
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be \"text\" or \"json\", got %q", cfg.Log.Format)
	}

	return nil
}
