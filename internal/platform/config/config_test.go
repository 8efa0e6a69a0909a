package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientrec/internal/client/input"
	dErrors "clientrec/pkg/domain-errors"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromLookupDefaults(t *testing.T) {
	cfg := fromLookup(env(nil))
	assert.Equal(t, Config{LogLevel: "info", LogFormat: "json", MaxDocumentBytes: input.DefaultMaxDocumentBytes}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestFromLookupOverrides(t *testing.T) {
	cfg := fromLookup(env(map[string]string{
		EnvLogLevel:         " DEBUG ",
		EnvLogFormat:        "Text",
		EnvMaxDocumentBytes: "4096",
	}))
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, int64(4096), cfg.MaxDocumentBytes)
	require.NoError(t, cfg.Validate())
}

func TestFromLookupIgnoresUnparseableLimit(t *testing.T) {
	cfg := fromLookup(env(map[string]string{EnvMaxDocumentBytes: "lots"}))
	assert.Equal(t, input.DefaultMaxDocumentBytes, cfg.MaxDocumentBytes)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"unknown level", Config{LogLevel: "trace", LogFormat: "json", MaxDocumentBytes: 1}, "log_level"},
		{"unknown format", Config{LogLevel: "info", LogFormat: "xml", MaxDocumentBytes: 1}, "log_format"},
		{"non-positive limit", Config{LogLevel: "info", LogFormat: "json", MaxDocumentBytes: -1}, "max_document_bytes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.Equal(t, tc.field, dErrors.FieldOf(err))
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	assert.Equal(t, "warn", FromEnv().LogLevel)
}
