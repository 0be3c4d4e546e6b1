package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse(env.Options{Prefix: EnvPrefix, Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Empty(t, cfg.AssetURL)
	assert.Equal(t, "fallback", cfg.Loader)
	assert.Equal(t, 8*time.Second, cfg.LoadTimeout)
	assert.Equal(t, "squelette-3d", cfg.BlockID)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "codepoint", cfg.LabelOrder)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.NotifyURL)
}

func TestParse_FromEnvironment(t *testing.T) {
	cfg, err := parse(env.Options{Prefix: EnvPrefix, Environment: map[string]string{
		"SQUELETTE_ASSET_URL":    "http://localhost/model.glb",
		"SQUELETTE_LOADER":       "placeholder",
		"SQUELETTE_LOAD_TIMEOUT": "250ms",
		"SQUELETTE_NOTIFY_URL":   "http://localhost/completion",
		"SQUELETTE_BLOCK_ID":     "bloc-7",
		"SQUELETTE_SEED":         "42",
		"SQUELETTE_LABEL_ORDER":  "fr",
	}})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost/model.glb", cfg.AssetURL)
	assert.Equal(t, "placeholder", cfg.Loader)
	assert.Equal(t, 250*time.Millisecond, cfg.LoadTimeout)
	assert.Equal(t, "http://localhost/completion", cfg.NotifyURL)
	assert.Equal(t, "bloc-7", cfg.BlockID)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "fr", cfg.LabelOrder)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"SQUELETTE_LOAD_TIMEOUT": "soon",
		"SQUELETTE_SEED":         "-3",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			_, err := parse(env.Options{Prefix: EnvPrefix, Environment: map[string]string{k: v}})
			assert.Error(t, err)
		})
	}

	_, err := parse(env.Options{Prefix: EnvPrefix, Environment: map[string]string{"SQUELETTE_LOAD_TIMEOUT": "-1s"}})
	assert.Error(t, err)
}

func TestDefaultLogPath_UsesXDG(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	p, err := DefaultLogPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/state/squelette/squelette.log", p)
}
