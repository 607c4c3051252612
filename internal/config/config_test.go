package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakegen/internal/generate"
)

var envKeys = []string{
	"FAKEGEN_COUNT",
	"FAKEGEN_OUTPUT",
	"FAKEGEN_WARN_THRESHOLD",
	"FAKEGEN_CONFIRM_THRESHOLD",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "") // registers restore on cleanup
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultCount, cfg.DefaultCount)
	assert.Equal(t, DefaultBasePath, cfg.DefaultBasePath)
	assert.Equal(t, generate.DefaultWarnThreshold, cfg.WarnThreshold)
	assert.Equal(t, DefaultConfirmThreshold, cfg.ConfirmThreshold)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FAKEGEN_COUNT", "50")
	t.Setenv("FAKEGEN_OUTPUT", "data/records")
	t.Setenv("FAKEGEN_WARN_THRESHOLD", "100")
	t.Setenv("FAKEGEN_CONFIRM_THRESHOLD", "200")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.DefaultCount)
	assert.Equal(t, "data/records", cfg.DefaultBasePath)
	assert.Equal(t, 100, cfg.WarnThreshold)
	assert.Equal(t, 200, cfg.ConfirmThreshold)
}

func TestLoadIgnoresUnparseableInts(t *testing.T) {
	clearEnv(t)
	t.Setenv("FAKEGEN_COUNT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultCount, cfg.DefaultCount)
}
