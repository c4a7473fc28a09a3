// photonics is an educational photoelectric-effect game.
//
// Usage:
//
//	photonics play [variant]     - Play in a desktop window
//	photonics term [variant]     - Play in the terminal (menu without a variant)
//	photonics serve              - Start SSH server for remote play
//	photonics scores [variant]   - Show caught counts and quiz results
//	photonics questions          - Print the quiz question bank
//	photonics list               - List available variants
//	photonics defaults           - Print the built-in game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.photonics/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/photonics/internal/config"
	"github.com/vovakirdan/photonics/internal/games/photon"
	"github.com/vovakirdan/photonics/internal/registry"
	"github.com/vovakirdan/photonics/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "photonics",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "photonics",
	Short: "Photon → Power - learn the photoelectric effect by playing",
	Long: `Photon → Power is a small game about how a solar cell turns light
into current. Catch falling photons with the detector, watch electron-hole
pairs form and light the bulb, then answer a short quiz.

Available commands:
  play       - Play in a desktop window
  term       - Play in the terminal
  serve      - Start SSH server for remote play
  scores     - View caught counts and quiz results
  questions  - Print the quiz questions
  list       - Show all game variants

Examples:
  photonics play
  photonics play photon_free
  photonics term --difficulty hard
  photonics serve --ssh :2222
  photonics scores photon`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		log.SetDefault(logger)

		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown --difficulty %q (easy, normal, hard, fixed)", flagDifficulty)
		}

		// Broken config files fall back to defaults inside the game; say so here
		if _, err := config.Load(flagConfig); err != nil {
			logger.Warn("using built-in config", "err", err)
		}
		photon.SetConfigPath(flagConfig)
		photon.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// openStore opens the scores database, logging instead of failing:
// the game still works without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// variantArg returns the requested variant or the guided game by default.
func variantArg(args []string) (string, error) {
	if len(args) == 0 {
		return photon.GameID, nil
	}
	id := args[0]
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown variant %q, run 'photonics list' to see available variants", id)
	}
	return id, nil
}
