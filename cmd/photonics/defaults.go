package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/photonics/internal/config"
)

var flagDefaultsOut string

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in game config",
	Long: `Print the embedded default config as YAML. Save it, edit it and pass
it back with --config to tune the game.

Examples:
  photonics defaults
  photonics defaults -o photon.yaml
  photonics play --config photon.yaml`,
	Args: cobra.NoArgs,
	RunE: runDefaults,
}

func init() {
	defaultsCmd.Flags().StringVarP(&flagDefaultsOut, "output", "o", "", "Write to this file instead of stdout")
}

func runDefaults(cmd *cobra.Command, _ []string) error {
	data := config.DefaultYAML()
	if flagDefaultsOut == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(flagDefaultsOut, data, 0o644); err != nil {
		return fmt.Errorf("writing defaults: %w", err)
	}
	logger.Info("default config written", "path", flagDefaultsOut)
	return nil
}
