package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells (terminal) or pixels (window)
	ScreenH  int   // Screen height in cells (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  1000,
		ScreenH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// WithSessionSeed returns c for a new session. A zero Seed is replaced with
// next() so every session differs; a fixed seed is kept so sessions replay.
func (c RuntimeConfig) WithSessionSeed(next func() int64) RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = next()
	}
	return c
}

// Phase is the coarse stage a game session is in.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseCountdown
	PhasePlaying
	PhaseQuiz
	PhaseQuizResult
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "Intro"
	case PhaseCountdown:
		return "Countdown"
	case PhasePlaying:
		return "Playing"
	case PhaseQuiz:
		return "Quiz"
	case PhaseQuizResult:
		return "QuizResult"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int   // Photons caught
	GameOver  bool  // Whether the game has ended
	Paused    bool  // Whether the game is paused
	Phase     Phase // Current session phase
	QuizScore int   // Correct answers so far (or final score once taken)
	QuizTaken bool  // Whether the quiz has been completed
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
