package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/squelette/internal/app"
	"github.com/abhisek/squelette/internal/completion"
	"github.com/abhisek/squelette/internal/config"
	"github.com/abhisek/squelette/internal/logger"
	"github.com/abhisek/squelette/internal/quiz"
	quizscreen "github.com/abhisek/squelette/internal/screens/quiz"
	"github.com/abhisek/squelette/internal/viewport"
)

// runApp builds dependencies from the configuration and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	loader, err := viewport.NewLoader(cfg.Loader, cfg.AssetURL, cfg.LoadTimeout, log)
	if err != nil {
		return err
	}

	listener := completion.NewListener(4)
	host := completion.NewBroadcaster(log, listener)

	if cfg.EventsFile != "" {
		f, err := openEventsFile(cfg.EventsFile)
		if err != nil {
			return err
		}
		defer f.Close()
		host.Add(completion.NewWriterSink(f))
	}
	if cfg.NotifyURL != "" {
		host.Add(completion.NewHTTPSink(cfg.NotifyURL))
	}

	log.Info("starting",
		zap.String("loader", cfg.Loader),
		zap.String("block_id", cfg.BlockID),
		zap.Int("sinks", host.Len()),
	)

	opts := app.Options{
		Quiz: quizscreen.Deps{
			Loader:      loader,
			LoadTimeout: cfg.LoadTimeout,
			Host:        host,
			Options:     quizOptions(cfg),
			Log:         log,
		},
		Listener: listener,
		Log:      log,
	}
	return app.Run(opts)
}

func quizOptions(cfg *config.Config) []quiz.Option {
	opts := []quiz.Option{
		quiz.WithBlockID(cfg.BlockID),
		quiz.WithLabelOrder(quiz.ParseLabelOrder(cfg.LabelOrder)),
	}
	if cfg.Seed != 0 {
		opts = append(opts, quiz.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))))
	}
	return opts
}

func openEventsFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create events directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open events file: %w", err)
	}
	return f, nil
}
