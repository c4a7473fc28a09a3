package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/photonics/internal/core"
	"github.com/vovakirdan/photonics/internal/quiz"
	"github.com/vovakirdan/photonics/internal/registry"
	"github.com/vovakirdan/photonics/internal/storage"
)

// HoldTicks is how long a single arrow press keeps the detector moving.
// Key repeat refreshes it while the key stays down.
const HoldTicks = 8

// quizGame is implemented by games that run a quiz worth recording.
type quizGame interface {
	QuizSession() *quiz.Session
}

// Model is the Bubble Tea model for running the photon game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	holds      map[core.Action]int // Remaining ticks per held direction
	gameState  core.GameState
	quitting   bool
	embedded   bool // Run inside a session; quitting returns to the menu
	backToMenu bool
	scoreSaved bool // Whether the caught count has been recorded
	quizSaved  bool // Whether the quiz result has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		holds:      make(map[core.Action]int),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.recordSession()
		if m.embedded && msg.String() != "ctrl+c" {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsHeld(action):
		m.hold(action)
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// hold keeps a direction active and cancels the opposite one,
// so reversing does not wait for the old hold to expire.
func (m Model) hold(action core.Action) {
	opposite := core.ActionLeft
	if action == core.ActionLeft {
		opposite = core.ActionRight
	}
	delete(m.holds, opposite)
	m.holds[action] = HoldTicks
}

// handleResize processes window resize events.
// The world has a fixed size and is scaled into the screen, so no reset is needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.recordSession()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.quizSaved = false
		m.inputFrame.Clear()
		clear(m.holds)
		return m, tickCmd(m.config.TickRate)
	}

	for action, left := range m.holds {
		m.inputFrame.Set(action)
		if left <= 1 {
			delete(m.holds, action)
		} else {
			m.holds[action] = left - 1
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Quiz results are saved as soon as the quiz is over
	if core.HasEvent(result.Events, core.EventQuizFinished) {
		m.recordQuiz()
	}

	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.recordSession()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordQuiz saves a finished quiz once.
func (m *Model) recordQuiz() {
	if m.quizSaved || m.store == nil {
		return
	}
	qg, ok := m.game.(quizGame)
	if !ok || qg.QuizSession() == nil || !qg.QuizSession().Done() {
		return
	}
	if err := m.store.RecordSession(m.game.ID(), 0, qg.QuizSession()); err != nil {
		log.Error("failed to save quiz result", "game", m.game.ID(), "err", err)
	}
	m.quizSaved = true
}

// recordSession saves the caught count and any unsaved quiz result once.
func (m *Model) recordSession() {
	m.recordQuiz()
	if m.scoreSaved || m.store == nil {
		return
	}
	score := m.game.State().Score
	if score == 0 {
		return
	}
	if err := m.store.RecordSession(m.game.ID(), score, nil); err != nil {
		log.Error("failed to save score", "game", m.game.ID(), "err", err)
	}
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".photonics", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the player asked to leave entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if an embedded game was left for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
