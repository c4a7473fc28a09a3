package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/photonics/internal/core"
	"github.com/vovakirdan/photonics/internal/platform/tui"
	"github.com/vovakirdan/photonics/internal/registry"
	"github.com/vovakirdan/photonics/internal/storage"
)

var termCmd = &cobra.Command{
	Use:   "term [variant]",
	Short: "Play in the terminal",
	Long: `Play the game in the terminal. Without a variant a menu lets you
pick one and view the scoreboard; after a game you return to the menu.

Controls:
  Left/Right, A/D  - Move the detector (each press moves for a moment)
  1-4              - Answer quiz questions
  Enter/Space      - Skip the intro
  P                - Pause
  R                - Restart
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  photonics term
  photonics term photon_free
  photonics term --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTerm,
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runTerm(_ *cobra.Command, args []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	cfg := terminalConfig()

	if len(args) == 1 {
		gameID, err := variantArg(args)
		if err != nil {
			return err
		}
		game, err := registry.Create(gameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		return tui.Run(game, store, cfg)
	}

	return runMenu(store, cfg)
}

// runMenu loops between the variant menu, the scoreboard and games.
func runMenu(store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("creating game", "variant", menuResult.GameID, "err", err)
			continue
		}

		// Fresh seed for each game unless one was fixed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			logger.Error("running game", "variant", menuResult.GameID, "err", err)
		}
	}
}
