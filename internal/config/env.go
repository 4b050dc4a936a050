package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvDataset     = "CERTCHECK_DATASET"
	EnvFormat      = "CERTCHECK_FORMAT"
	EnvSheet       = "CERTCHECK_SHEET"
	EnvLookupDelay = "CERTCHECK_LOOKUP_DELAY_MS"
	EnvLogFile     = "CERTCHECK_LOG_FILE"
	EnvLogLevel    = "CERTCHECK_LOG_LEVEL"
)

// LoadDotEnv populates the process environment from a .env file. Variables
// already set are left alone. A missing file is not an error.
func LoadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func applyEnv(raw *fileConfig) {
	if v, ok := lookupEnv(EnvDataset); ok {
		raw.Dataset = v
	}
	if v, ok := lookupEnv(EnvFormat); ok {
		raw.Format = v
	}
	if v, ok := lookupEnv(EnvSheet); ok {
		raw.Sheet = v
	}
	if v, ok := lookupEnv(EnvLookupDelay); ok {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			raw.LookupDelayMS = &ms
		}
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		raw.LogFile = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok {
		raw.LogLevel = v
	}
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
