// Package gui runs the photon game in a desktop window using Ebiten.
// The game itself stays platform independent; this package only maps keys
// to actions, draws snapshots and plays sounds for events.
package gui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/photonics/internal/assets"
	"github.com/vovakirdan/photonics/internal/core"
	"github.com/vovakirdan/photonics/internal/games/photon"
	"github.com/vovakirdan/photonics/internal/storage"
)

func timeSeed() int64 {
	return time.Now().UnixNano()
}

// Options configures a window session.
type Options struct {
	Runtime core.RuntimeConfig // Seed 0 picks a new seed for every session
	Assets  *assets.Assets
	Store   *storage.Store // Optional; nil disables persistence
	Logger  *log.Logger
}

// App implements ebiten.Game around a photon game.
type App struct {
	game    *photon.Game
	opts    Options
	logger  *log.Logger
	fonts   *fonts
	sprites *sprites
	sound   *sound
	input   inputState
	last    core.StepResult
}

// New prepares an App. The game is reset with opts.Runtime.
func New(game *photon.Game, opts Options) (*App, error) {
	if opts.Assets == nil {
		opts.Assets = assets.Generated()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	f, err := loadFonts()
	if err != nil {
		return nil, fmt.Errorf("gui: load fonts: %w", err)
	}

	game.Reset(opts.Runtime.WithSessionSeed(timeSeed))

	return &App{
		game:    game,
		opts:    opts,
		logger:  logger,
		fonts:   f,
		sprites: newSprites(opts.Assets),
		sound:   newSound(opts.Assets.Zap),
	}, nil
}

// Run opens the window and blocks until the player quits.
func Run(game *photon.Game, opts Options) error {
	app, err := New(game, opts)
	if err != nil {
		return err
	}

	for _, name := range app.opts.Assets.Missing {
		app.logger.Warn("asset missing, using generated fallback", "file", name)
	}

	cfg := game.Config()
	ebiten.SetWindowSize(cfg.World.Width, cfg.World.Height)
	ebiten.SetWindowTitle(photon.WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	err = ebiten.RunGame(app)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update advances the game by one tick.
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		a.finish()
		return ebiten.Termination
	}

	in := a.input.poll()

	if in.Has(core.ActionRestart) {
		a.finish()
		a.game.Reset(a.opts.Runtime.WithSessionSeed(timeSeed))
		return nil
	}

	a.last = a.game.Step(in)
	if core.HasEvent(a.last.Events, core.EventPhotonCaught) {
		a.sound.playZap(a.logger)
	}

	if a.last.State.GameOver {
		a.finish()
		return ebiten.Termination
	}
	return nil
}

// Layout keeps the logical screen at world size and lets Ebiten scale it.
func (a *App) Layout(_, _ int) (int, int) {
	cfg := a.game.Config()
	return cfg.World.Width, cfg.World.Height
}

// finish records the session and resets the game so it is never saved twice,
// even when saving failed halfway.
func (a *App) finish() {
	if a.opts.Store == nil {
		return
	}
	state := a.game.State()
	q := a.game.QuizSession()
	if state.Score == 0 && (q == nil || !q.Done()) {
		return
	}
	defer a.game.Reset(a.opts.Runtime.WithSessionSeed(timeSeed))

	if err := a.opts.Store.RecordSession(a.game.ID(), state.Score, q); err != nil {
		a.logger.Error("failed to save session", "game", a.game.ID(), "err", err)
		return
	}
	a.logger.Info("session saved", "game", a.game.ID(), "caught", state.Score)
}
