package photon

import (
	"math"

	"github.com/vovakirdan/photonics/internal/core"
	"github.com/vovakirdan/photonics/internal/quiz"
)

// Snapshot is a deep copy of the world used by the window renderer and
// determinism tests. Mutating it never affects the game.
type Snapshot struct {
	Tick      uint64
	PlayTicks int
	Phase     core.Phase
	PhaseLeft int // Ticks left in the current timed phase
	Countdown int
	Paused    bool
	GameOver  bool
	Score     int

	Stars     []Star
	Photons   []Photon
	Pairs     []ElectronHolePair
	Sparks    []Spark
	Bands     []BandTransition
	Electrons []core.Vec
	Holes     []core.Vec
	Detector  Detector

	AppIndex        int
	BulbGlow        bool
	LegendHighlight bool

	// Quiz state, valid once the quiz has started.
	QuizActive   bool
	Question     quiz.Question
	QuestionNum  int
	QuizScore    int
	QuizTotal    int
	QuizPassed   bool
	QuizFinished bool
}

// Snapshot returns the current world state.
func (g *Game) Snapshot() Snapshot {
	sparks := make([]Spark, len(g.sparks))
	for i, s := range g.sparks {
		sparks[i] = Spark{Particles: append([]SparkParticle(nil), s.Particles...)}
	}

	snap := Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PlayTicks: g.playTicks,
		Phase:     g.phase,
		PhaseLeft: g.phaseTicks,
		Countdown: g.countdown,
		Paused:    g.paused,
		GameOver:  g.gameOver,
		Score:     g.score,

		Stars:     append([]Star(nil), g.stars...),
		Photons:   append([]Photon(nil), g.photons...),
		Pairs:     append([]ElectronHolePair(nil), g.pairs...),
		Sparks:    sparks,
		Bands:     append([]BandTransition(nil), g.bands...),
		Electrons: append([]core.Vec(nil), g.electrons...),
		Holes:     append([]core.Vec(nil), g.holes...),
		Detector:  g.detector,

		AppIndex:        g.appIndex,
		BulbGlow:        g.bulbGlow > 0,
		LegendHighlight: g.legendHighlight > 0,
	}

	if s := g.quizSession; s != nil {
		snap.QuizActive = g.phase == core.PhaseQuiz
		snap.QuizScore = s.Score()
		snap.QuizTotal = s.Total()
		snap.QuizPassed = s.Passed(g.cfg.Quiz.PassMark)
		snap.QuizFinished = s.Done()
		if q, idx, ok := s.Current(); ok {
			snap.Question = q
			snap.QuestionNum = idx + 1
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) {
		h = h*31 + v
	}
	mixF := func(f float64) {
		mix(math.Float64bits(f))
	}

	mix(uint64(snap.Score))        //#nosec G115 -- hash computation
	mix(uint64(snap.Phase))        //#nosec G115 -- hash computation
	mix(uint64(snap.Detector.X))   //#nosec G115 -- hash computation
	mix(uint64(len(snap.Photons))) //#nosec G115 -- hash computation
	for _, p := range snap.Photons {
		mixF(p.Pos.X)
		mixF(p.Pos.Y)
		mixF(p.Speed)
	}
	for _, s := range snap.Stars {
		mixF(s.Pos.X)
		mixF(s.Pos.Y)
	}
	for _, s := range snap.Sparks {
		for _, p := range s.Particles {
			mixF(p.Pos.X)
			mixF(p.Pos.Y)
		}
	}
	for _, v := range snap.Electrons {
		mixF(v.X)
		mixF(v.Y)
	}
	for _, v := range snap.Holes {
		mixF(v.X)
		mixF(v.Y)
	}
	return h
}
