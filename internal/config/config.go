package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings. Every field can be set from the
// environment; command-line flags take precedence. Without an AssetURL the
// fallback loader goes straight to the placeholder model.
type Config struct {
	AssetURL    string        `env:"ASSET_URL"`
	Loader      string        `env:"LOADER" envDefault:"fallback"`
	LoadTimeout time.Duration `env:"LOAD_TIMEOUT" envDefault:"8s"`
	NotifyURL   string        `env:"NOTIFY_URL"`
	EventsFile  string        `env:"EVENTS_FILE"`
	BlockID     string        `env:"BLOCK_ID" envDefault:"squelette-3d"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string        `env:"LOG_FILE"`
	LabelOrder  string        `env:"LABEL_ORDER" envDefault:"codepoint"`
	Seed        uint64        `env:"SEED"`
}

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "SQUELETTE_"

// Load parses configuration from the environment.
func Load() (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.LoadTimeout < 0 {
		return nil, fmt.Errorf("load timeout must not be negative, got %s", cfg.LoadTimeout)
	}
	return &cfg, nil
}

// DefaultLogPath returns the XDG state path for the log file.
func DefaultLogPath() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "squelette", "squelette.log"), nil
}
