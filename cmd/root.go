package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/squelette/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "squelette",
	Short: "Skeleton labeling quiz",
	Long:  "Squelette: place the name of each bone on a 3D human skeleton, right in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(anchorsCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the flags that override config.Config.
func addConfigFlags(pf *pflag.FlagSet) {
	pf.String("asset-url", "", "URL of the skeleton glTF binary (overrides SQUELETTE_ASSET_URL)")
	pf.String("loader", "", "Model loader: fallback, remote or placeholder (overrides SQUELETTE_LOADER)")
	pf.String("notify-url", "", "Host URL receiving completion events (overrides SQUELETTE_NOTIFY_URL)")
	pf.String("events-file", "", "File receiving one completion event per line (overrides SQUELETTE_EVENTS_FILE)")
	pf.String("log-file", "", "Log file path (overrides SQUELETTE_LOG_FILE)")
	pf.String("log-level", "", "Log level: debug, info, warn or error (overrides SQUELETTE_LOG_LEVEL)")
	pf.Uint64("seed", 0, "Label shuffle seed, 0 for random (overrides SQUELETTE_SEED)")
}

// resolveConfig loads the environment configuration and applies the flags
// the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	return resolveConfigFlags(cmd.Flags())
}

func resolveConfigFlags(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	strFlags := map[string]*string{
		"asset-url":   &cfg.AssetURL,
		"loader":      &cfg.Loader,
		"notify-url":  &cfg.NotifyURL,
		"events-file": &cfg.EventsFile,
		"log-file":    &cfg.LogFile,
		"log-level":   &cfg.LogLevel,
	}
	for name, dst := range strFlags {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}

	if cfg.LogFile == "" {
		if p, err := config.DefaultLogPath(); err == nil {
			cfg.LogFile = p
		}
	}
	return cfg, nil
}
