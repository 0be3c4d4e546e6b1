package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/squelette/internal/viewport"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Fetch the skeleton model and print its glTF summary",
	Long: `Download the model from the configured asset URL and check that it is a
glTF binary. No quiz is started; useful to verify an asset before shipping it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cfg.AssetURL == "" {
			return fmt.Errorf("no asset URL: set --asset-url or SQUELETTE_ASSET_URL")
		}

		ctx := context.Background()
		if cfg.LoadTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.LoadTimeout)
			defer cancel()
		}

		m, err := viewport.NewRemoteLoader(cfg.AssetURL).Load(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("URL:        %s\n", m.URL)
		fmt.Printf("Size:       %d bytes\n", m.Size)
		fmt.Printf("glTF:       %s\n", m.Info.Version)
		fmt.Printf("Generator:  %s\n", m.Info.Generator)
		fmt.Printf("Meshes:     %d\n", m.Info.Meshes)
		fmt.Printf("Nodes:      %d\n", m.Info.Nodes)
		fmt.Printf("BIN chunk:  %v\n", m.Info.HasBinary)
		return nil
	},
}
