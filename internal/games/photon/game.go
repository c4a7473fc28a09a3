// Package photon implements the photoelectric-effect teaching game.
// Photons fall from the sky; the player moves a detector to catch them.
// Every catch generates an electron-hole pair, a spark, an energy-band
// transition and lights the bulb. After a while of play a short quiz runs.
package photon

import (
	"math/rand"

	"github.com/vovakirdan/photonics/internal/config"
	"github.com/vovakirdan/photonics/internal/core"
	"github.com/vovakirdan/photonics/internal/quiz"
	"github.com/vovakirdan/photonics/internal/registry"
)

// Registered game IDs.
const (
	GameID     = "photon"
	FreePlayID = "photon_free"
)

// Game implements the photon catching game logic.
type Game struct {
	free       bool                 // Free play: no intro, no quiz
	override   *config.PhotonConfig // Config injected by NewWithConfig
	bank       quiz.Bank
	cfg        config.PhotonConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	phase      core.Phase
	phaseTicks int // Ticks left in the intro, countdown step or quiz result
	countdown  int // Number currently shown by the countdown

	stars     []Star
	photons   []Photon
	pairs     []ElectronHolePair
	sparks    []Spark
	bands     []BandTransition
	electrons []core.Vec // Settled electrons in the conduction band
	holes     []core.Vec // Settled holes in the valence band
	detector  Detector

	score     int
	gameOver  bool
	paused    bool
	tickCount int // Ticks since reset, excluding pause
	playTicks int // Ticks spent in PhasePlaying

	appIndex        int
	appTimer        int
	bulbGlow        int
	legendHighlight int

	quizSession *quiz.Session
	quizShown   bool
	quizTaken   bool

	events []core.Event
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a guided game: intro, countdown, play and a quiz.
func New() *Game {
	return &Game{}
}

// NewFreePlay creates a game that starts playing immediately and never quizzes.
func NewFreePlay() *Game {
	return &Game{free: true}
}

// NewWithConfig creates a game that uses cfg and bank instead of loading
// them from disk on Reset.
func NewWithConfig(cfg config.PhotonConfig, bank quiz.Bank, free bool) *Game {
	return &Game{free: free, override: &cfg, bank: bank}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.free {
		return FreePlayID
	}
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.free {
		return "Photon → Power (Free Play)"
	}
	return "Photon → Power"
}

// Summary describes the variant for menus and the list command.
func (g *Game) Summary() string {
	if g.free {
		return "Catch photons without intro or quiz"
	}
	return "Guided play: intro, catching, then a quiz"
}

// Reset initializes or restarts the game.
// World dimensions come from the game config; the runtime config supplies
// the seed and tick rate.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg, g.bank = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.stars = make([]Star, g.cfg.World.StarCount)
	for i := range g.stars {
		g.stars[i] = newStar(g.rng, g.cfg.World)
	}
	g.photons = g.photons[:0]
	g.pairs = g.pairs[:0]
	g.sparks = g.sparks[:0]
	g.bands = g.bands[:0]
	g.electrons = g.electrons[:0]
	g.holes = g.holes[:0]
	g.detector = newDetector(g.cfg)

	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.playTicks = 0
	// The first playing tick already advances the panel
	g.appIndex = 0
	g.appTimer = 0
	g.bulbGlow = 0
	g.legendHighlight = 0
	g.quizSession = nil
	g.quizShown = false
	g.quizTaken = false
	g.events = nil

	if g.free {
		g.phase = core.PhasePlaying
	} else {
		g.phase = core.PhaseIntro
		g.phaseTicks = g.cfg.Timing.IntroTicks
	}
}

// loadConfig resolves the game config and question bank, falling back to
// the built-in defaults when files cannot be used.
func (g *Game) loadConfig() (config.PhotonConfig, quiz.Bank) {
	if g.override != nil {
		bank := g.bank
		if bank.Len() == 0 {
			bank = quiz.DefaultBank()
		}
		return *g.override, bank
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultPhotonConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)

	bank, err := quiz.LoadBank(cfg.Quiz.QuestionsPath)
	if err != nil {
		bank = quiz.DefaultBank()
	}
	return cfg, bank
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.gameOver {
		return g.result()
	}

	if in.Has(core.ActionQuit) {
		g.gameOver = true
		return g.result()
	}

	// Handle pause toggle; the quiz waits for an answer anyway
	if in.Has(core.ActionPause) && g.phase != core.PhaseQuiz {
		g.paused = !g.paused
	}

	if g.paused {
		return g.result()
	}

	g.tickCount++

	switch g.phase {
	case core.PhaseIntro:
		g.stepIntro(in)
	case core.PhaseCountdown:
		g.stepCountdown(in)
	case core.PhasePlaying:
		g.stepPlaying(in)
	case core.PhaseQuiz:
		g.stepQuiz(in)
	case core.PhaseQuizResult:
		g.phaseTicks--
		if g.phaseTicks <= 0 {
			g.phase = core.PhasePlaying
		}
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = make([]core.Event, len(g.events))
		copy(events, g.events)
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) stepIntro(in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		g.phase = core.PhasePlaying
		return
	}
	g.phaseTicks--
	if g.phaseTicks <= 0 {
		g.startCountdown()
	}
}

func (g *Game) startCountdown() {
	if g.cfg.Timing.CountdownFrom <= 0 {
		g.phase = core.PhasePlaying
		return
	}
	g.phase = core.PhaseCountdown
	g.countdown = g.cfg.Timing.CountdownFrom
	g.phaseTicks = g.cfg.Timing.CountdownTicks
}

func (g *Game) stepCountdown(in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		g.phase = core.PhasePlaying
		return
	}
	g.phaseTicks--
	if g.phaseTicks > 0 {
		return
	}
	g.countdown--
	if g.countdown <= 0 {
		g.phase = core.PhasePlaying
		return
	}
	g.phaseTicks = g.cfg.Timing.CountdownTicks
}

// stepPlaying runs one update → collide pass over every entity list.
func (g *Game) stepPlaying(in core.InputFrame) {
	g.playTicks++

	for i := range g.stars {
		g.stars[i].update(g.rng, g.cfg.World)
	}

	// Both directions held cancel out
	dir := 0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	if dir != 0 {
		g.detector.Move(dir)
	}

	spawnOneIn := g.difficulty.SpawnOneIn(g.cfg.Photon.SpawnOneIn, g.score, g.playTicks)
	if g.rng.Intn(spawnOneIn) == 0 {
		g.spawnPhoton()
	}

	g.updatePhotons()
	g.updatePairs()
	g.updateSparks()
	g.updateBands()

	g.appTimer--
	if g.appTimer <= 0 {
		g.appIndex = (g.appIndex + 1) % len(Applications)
		g.appTimer = g.cfg.Timing.ApplicationTicks
	}
	if g.bulbGlow > 0 {
		g.bulbGlow--
	}
	if g.legendHighlight > 0 {
		g.legendHighlight--
	}

	if g.quizDue() {
		g.startQuiz()
	}
}

func (g *Game) spawnPhoton() {
	p := g.cfg.Photon
	speed := g.difficulty.Speed(float64(randInt(g.rng, p.MinSpeed, p.MaxSpeed)), g.score, g.playTicks)
	// A photon faster than the detector is tall could step over it
	if maxSpeed := float64(g.cfg.Detector.Height - 1); speed > maxSpeed && maxSpeed > 0 {
		speed = maxSpeed
	}
	g.photons = append(g.photons, Photon{
		Pos:   core.Vec{X: float64(randInt(g.rng, p.MinX, g.cfg.World.Width-p.RightMargin)), Y: 0},
		Speed: speed,
	})
}

func (g *Game) updatePhotons() {
	kept := g.photons[:0]
	for _, p := range g.photons {
		p.fall()
		switch {
		case g.detector.Detect(p):
			g.catchPhoton(p)
		case p.Pos.Y > float64(g.cfg.World.Height):
			// Missed, falls off the bottom
		default:
			kept = append(kept, p)
		}
	}
	g.photons = kept
}

// catchPhoton spawns the effects of a detected photon.
func (g *Game) catchPhoton(p Photon) {
	at := core.Vec{X: p.Pos.X, Y: float64(g.detector.Y)}
	g.pairs = append(g.pairs, newPair(at, g.cfg.Pair.Lifetime))
	g.sparks = append(g.sparks, newSpark(g.rng, at, g.cfg.Spark))

	band := g.cfg.Band
	hole := sampleNonOverlapping(g.rng, band.HoleBox, band.HoleRadius, g.holes, band.MaxAttempts, band.HoleFallback)
	g.bands = append(g.bands, newBandTransition(hole, band))

	g.score++
	g.bulbGlow = g.cfg.Timing.BulbGlowTicks
	g.legendHighlight = g.cfg.Timing.LegendHighlightTicks
	g.events = append(g.events, core.Event{Kind: core.EventPhotonCaught, X: at.X, Y: at.Y})
}

func (g *Game) updatePairs() {
	kept := g.pairs[:0]
	for _, p := range g.pairs {
		p.update(g.cfg.Pair.Drift)
		if p.Timer > 0 {
			kept = append(kept, p)
		}
	}
	g.pairs = kept
}

func (g *Game) updateSparks() {
	kept := g.sparks[:0]
	for _, s := range g.sparks {
		s.update()
		if !s.Dead() {
			kept = append(kept, s)
		}
	}
	g.sparks = kept
}

func (g *Game) updateBands() {
	band := g.cfg.Band
	kept := g.bands[:0]
	for _, b := range g.bands {
		if b.update(band) {
			electron := sampleNonOverlapping(g.rng, band.ElectronBox, band.ElectronRadius, g.electrons, band.MaxAttempts, band.ElectronFallback)
			g.electrons = append(g.electrons, electron)
			g.holes = append(g.holes, b.Hole)
			continue
		}
		kept = append(kept, b)
	}
	g.bands = kept
}

func (g *Game) quizDue() bool {
	return !g.free &&
		g.cfg.Quiz.Enabled &&
		!g.quizShown &&
		g.bank.Len() > 0 &&
		g.playTicks >= g.cfg.Timing.QuizAfterTicks
}

func (g *Game) startQuiz() {
	g.quizShown = true
	g.quizSession = quiz.NewSession(g.bank)
	g.phase = core.PhaseQuiz
	g.events = append(g.events, core.Event{Kind: core.EventQuizStarted, Total: g.bank.Len()})
}

func (g *Game) stepQuiz(in core.InputFrame) {
	idx := in.AnswerIndex()
	if idx < 0 {
		return
	}
	correct, err := g.quizSession.Answer(idx)
	if err != nil {
		return
	}
	g.events = append(g.events, core.Event{Kind: core.EventQuizAnswered, Index: idx, Correct: correct})

	if g.quizSession.Done() {
		g.quizTaken = true
		g.events = append(g.events, core.Event{
			Kind:  core.EventQuizFinished,
			Score: g.quizSession.Score(),
			Total: g.quizSession.Total(),
		})
		g.phase = core.PhaseQuizResult
		g.phaseTicks = g.cfg.Timing.QuizResultTicks
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Score:     g.score,
		GameOver:  g.gameOver,
		Paused:    g.paused,
		Phase:     g.phase,
		QuizTaken: g.quizTaken,
	}
	if g.quizSession != nil {
		s.QuizScore = g.quizSession.Score()
	}
	return s
}

// Config returns the config the current session runs with.
func (g *Game) Config() config.PhotonConfig {
	return g.cfg
}

// QuizSession returns the running or finished quiz, or nil before it starts.
func (g *Game) QuizSession() *quiz.Session {
	return g.quizSession
}

// Register the game variants with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(FreePlayID, func() registry.Game {
		return NewFreePlay()
	})
}
