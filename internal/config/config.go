package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything the client needs to reach the API and log.
type Config struct {
	APIURL          string
	Timeout         time.Duration
	TokenPath       string
	LogFile         string
	LogLevel        string
	LogFormat       string
	RefreshInterval time.Duration
}

const (
	defaultConfigPath = "~/.config/sixcities/config.toml"
	defaultAPIURL     = "https://15.design.htmlacademy.pro/six-cities"
	defaultTimeout    = 5 * time.Second
	defaultTokenPath  = "~/.config/sixcities/token.toml"
	defaultLogFile    = "~/.local/state/sixcities/sixcities.log"
	defaultLogLevel   = "info"
	defaultLogFormat  = "tint"
)

// Environment variables that override file values.
const (
	EnvAPIURL    = "SIXCITIES_API_URL"
	EnvTimeout   = "SIXCITIES_TIMEOUT"
	EnvTokenPath = "SIXCITIES_TOKEN_PATH"
	EnvLogLevel  = "SIXCITIES_LOG_LEVEL"
)

// Load reads the TOML config at path (or the default location), then applies
// .env and environment overrides. A missing file yields defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	bytes, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}
	if bytes != nil {
		if err := cfg.applyTOML(bytes); err != nil {
			return Config{}, err
		}
	}

	// A .env next to the working directory is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	cfg.TokenPath = mustExpand(cfg.TokenPath)
	cfg.LogFile = mustExpand(cfg.LogFile)
	return cfg, nil
}

func defaults() Config {
	return Config{
		APIURL:    defaultAPIURL,
		Timeout:   defaultTimeout,
		TokenPath: defaultTokenPath,
		LogFile:   defaultLogFile,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return bytes, nil
}

func (c *Config) applyTOML(bytes []byte) error {
	var raw struct {
		APIURL          string `toml:"api_url"`
		Timeout         string `toml:"timeout"`
		TokenPath       string `toml:"token_path"`
		LogFile         string `toml:"log_file"`
		LogLevel        string `toml:"log_level"`
		LogFormat       string `toml:"log_format"`
		RefreshInterval string `toml:"refresh_interval"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	setString(&c.APIURL, raw.APIURL)
	setString(&c.TokenPath, raw.TokenPath)
	setString(&c.LogFile, raw.LogFile)
	setString(&c.LogLevel, raw.LogLevel)
	setString(&c.LogFormat, raw.LogFormat)

	if err := setDuration(&c.Timeout, raw.Timeout, "timeout"); err != nil {
		return err
	}
	if err := setDuration(&c.RefreshInterval, raw.RefreshInterval, "refresh_interval"); err != nil {
		return err
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.APIURL, os.Getenv(EnvAPIURL))
	setString(&c.TokenPath, os.Getenv(EnvTokenPath))
	setString(&c.LogLevel, os.Getenv(EnvLogLevel))
	return setDuration(&c.Timeout, os.Getenv(EnvTimeout), EnvTimeout)
}

func setString(dst *string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*dst = trimmed
	}
}

func setDuration(dst *time.Duration, value, name string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return fmt.Errorf("parse config: invalid %s %q: %w", name, trimmed, err)
	}
	if d < 0 {
		return fmt.Errorf("parse config: %s must not be negative", name)
	}
	*dst = d
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
