package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/photonics/internal/assets"
	"github.com/vovakirdan/photonics/internal/core"
	"github.com/vovakirdan/photonics/internal/games/photon"
	"github.com/vovakirdan/photonics/internal/platform/gui"
	"github.com/vovakirdan/photonics/internal/registry"
)

var flagAssets string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in a desktop window",
	Long: `Open the game window. Without a variant the guided game starts:
intro, countdown, play and a quiz after 30 seconds.

Controls:
  Left/Right, A/D  - Move the detector
  1-4              - Answer quiz questions
  Enter/Space      - Skip the intro
  P                - Pause
  R                - Restart
  Esc              - Quit

Assets are read from --assets (bulb_off.png, bulb_on.png, zap.wav).
Missing files are replaced with generated ones.

Examples:
  photonics play
  photonics play photon_free
  photonics play --assets ./assets --difficulty easy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagAssets, "assets", assets.DefaultDir, "Directory with bulb images and the zap sound")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	g, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	game, ok := g.(*photon.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot run in a window", gameID)
	}

	a, err := assets.Load(flagAssets)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed

	logger.Debug("starting window", "variant", gameID, "tps", runtime.TickRate, "seed", runtime.Seed)
	return gui.Run(game, gui.Options{
		Runtime: runtime,
		Assets:  a,
		Store:   store,
		Logger:  logger,
	})
}
