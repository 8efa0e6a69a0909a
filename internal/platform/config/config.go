package config

import (
	"os"
	"strconv"
	"strings"

	"clientrec/internal/client/input"
	"clientrec/pkg/validation"
)

// Environment variable names.
const (
	EnvLogLevel         = "CLIENTREC_LOG_LEVEL"
	EnvLogFormat        = "CLIENTREC_LOG_FORMAT"
	EnvMaxDocumentBytes = "CLIENTREC_MAX_DOCUMENT_BYTES"
)

// Config captures process-level settings for the clientrec tools.
type Config struct {
	LogLevel         string `validate:"oneof=debug info warn error"`
	LogFormat        string `validate:"oneof=json text"`
	MaxDocumentBytes int64  `validate:"gt=0"`
}

// FromEnv builds a Config from environment variables so main stays lean.
// An unparseable document limit falls back to the default.
func FromEnv() Config {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) Config {
	cfg := Config{
		LogLevel:         "info",
		LogFormat:        "json",
		MaxDocumentBytes: input.DefaultMaxDocumentBytes,
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv(EnvMaxDocumentBytes); v != "" {
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			cfg.MaxDocumentBytes = n
		}
	}
	return cfg
}

// Validate rejects settings no component can honour.
func (c Config) Validate() error {
	return validation.Validate(c)
}
