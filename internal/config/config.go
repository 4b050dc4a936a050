package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/certcheck/internal/dataset"
)

// Config captures everything certcheck needs at startup.
type Config struct {
	Dataset      string // local path or http(s) URL
	Format       dataset.Format
	Sheet        string
	LookupDelay  time.Duration
	FetchTimeout time.Duration
	LogFile      string
	LogLevel     string
}

const (
	defaultConfigPath   = "~/.config/certcheck/config.toml"
	defaultDataset      = "~/.local/share/certcheck/users.csv"
	defaultLogFile      = "~/.local/state/certcheck/certcheck.log"
	defaultLogLevel     = "info"
	defaultLookupDelay  = 500 * time.Millisecond
	defaultFetchTimeout = 10 * time.Second
)

type fileConfig struct {
	Dataset        string `toml:"dataset"`
	Format         string `toml:"format"`
	Sheet          string `toml:"sheet"`
	LookupDelayMS  *int64 `toml:"lookup_delay_ms"`
	FetchTimeoutMS int64  `toml:"fetch_timeout_ms"`
	LogFile        string `toml:"log_file"`
	LogLevel       string `toml:"log_level"`
}

// Default returns the built-in configuration with paths expanded.
func Default() Config {
	return Config{
		Dataset:      mustExpand(defaultDataset),
		LookupDelay:  defaultLookupDelay,
		FetchTimeout: defaultFetchTimeout,
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
	}
}

// Load parses the config file at path (default when empty), then applies
// CERTCHECK_* environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	raw, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}
	applyEnv(&raw)

	return build(raw)
}

func readFile(path string) (fileConfig, error) {
	var raw fileConfig

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return raw, nil
		}
		return raw, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return raw, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return raw, fmt.Errorf("parse config: %w", err)
	}
	return raw, nil
}

func build(raw fileConfig) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(raw.Dataset); v != "" {
		location, err := ResolveDataset(v)
		if err != nil {
			return Config{}, fmt.Errorf("dataset: %w", err)
		}
		cfg.Dataset = location
	}

	format, err := dataset.ParseFormat(raw.Format)
	if err != nil {
		return Config{}, err
	}
	cfg.Format = format
	cfg.Sheet = strings.TrimSpace(raw.Sheet)

	if raw.LookupDelayMS != nil {
		if *raw.LookupDelayMS < 0 {
			return Config{}, fmt.Errorf("lookup_delay_ms must not be negative")
		}
		cfg.LookupDelay = time.Duration(*raw.LookupDelayMS) * time.Millisecond
	}
	if raw.FetchTimeoutMS > 0 {
		cfg.FetchTimeout = time.Duration(raw.FetchTimeoutMS) * time.Millisecond
	}

	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	return cfg, nil
}

// DatasetFormat returns the configured format or the one implied by the
// dataset location.
func (c Config) DatasetFormat() dataset.Format {
	if c.Format != "" {
		return c.Format
	}
	return dataset.DetectFormat(c.Dataset)
}

// ResolveDataset expands a local dataset path and leaves URLs untouched.
func ResolveDataset(location string) (string, error) {
	trimmed := strings.TrimSpace(location)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return trimmed, nil
	}
	return expandPath(trimmed)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
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
