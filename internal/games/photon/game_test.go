package photon

import (
	"strings"
	"testing"

	"github.com/vovakirdan/photonics/internal/config"
	"github.com/vovakirdan/photonics/internal/core"
	"github.com/vovakirdan/photonics/internal/quiz"
	"github.com/vovakirdan/photonics/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  1000,
	ScreenH:  600,
	TickRate: 60,
	Seed:     12345,
}

// newTestGame creates a reset game using the built-in config.
// Random spawning is effectively disabled when quiet is set.
func newTestGame(t *testing.T, free, quiet bool) *Game {
	t.Helper()
	cfg := config.DefaultPhotonConfig()
	if quiet {
		cfg.Photon.SpawnOneIn = 1 << 30
	}
	g := NewWithConfig(cfg, quiz.DefaultBank(), free)
	g.Reset(testRuntime)
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func stepN(g *Game, n int, in core.InputFrame) core.StepResult {
	var res core.StepResult
	for range n {
		res = g.Step(in)
	}
	return res
}

// dropOnDetector places a photon that enters the detector on the next tick.
func dropOnDetector(g *Game) {
	d := g.detector
	g.photons = append(g.photons, Photon{
		Pos:   core.Vec{X: float64(d.X + d.W/2), Y: float64(d.Y + 3 - 2)},
		Speed: 2,
	})
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{GameID, FreePlayID} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestIntroAndCountdown(t *testing.T) {
	g := newTestGame(t, false, true)
	empty := core.NewInputFrame()

	if g.State().Phase != core.PhaseIntro {
		t.Fatalf("initial phase = %v, want intro", g.State().Phase)
	}

	stepN(g, 119, empty)
	if g.State().Phase != core.PhaseIntro {
		t.Errorf("phase after 119 ticks = %v, want intro", g.State().Phase)
	}

	g.Step(empty)
	if g.State().Phase != core.PhaseCountdown || g.countdown != 3 {
		t.Fatalf("phase = %v countdown = %d, want countdown 3", g.State().Phase, g.countdown)
	}

	stepN(g, 60, empty)
	if g.countdown != 2 {
		t.Errorf("countdown after one second = %d, want 2", g.countdown)
	}

	stepN(g, 119, empty)
	if g.State().Phase != core.PhaseCountdown || g.countdown != 1 {
		t.Errorf("phase = %v countdown = %d, want countdown 1", g.State().Phase, g.countdown)
	}

	g.Step(empty)
	if g.State().Phase != core.PhasePlaying {
		t.Errorf("phase after countdown = %v, want playing", g.State().Phase)
	}
}

func TestConfirmSkipsIntro(t *testing.T) {
	g := newTestGame(t, false, true)
	g.Step(input(core.ActionConfirm))
	if g.State().Phase != core.PhasePlaying {
		t.Errorf("phase after confirm = %v, want playing", g.State().Phase)
	}
	if g.playTicks != 0 {
		t.Errorf("skipping the intro should not count as play, got %d ticks", g.playTicks)
	}
}

func TestFreePlayStartsPlaying(t *testing.T) {
	g := newTestGame(t, true, false)
	if g.State().Phase != core.PhasePlaying {
		t.Fatalf("free play phase = %v, want playing", g.State().Phase)
	}

	empty := core.NewInputFrame()
	for range 4000 {
		res := g.Step(empty)
		if res.State.Phase != core.PhasePlaying {
			t.Fatalf("free play left playing phase: %v", res.State.Phase)
		}
		if core.HasEvent(res.Events, core.EventQuizStarted) {
			t.Fatal("free play should never start the quiz")
		}
	}
}

func TestDetectorInput(t *testing.T) {
	g := newTestGame(t, true, true)
	cfg := g.Config()

	stepN(g, 200, input(core.ActionRight))
	if g.detector.X != cfg.DetectorMaxX() {
		t.Errorf("detector x = %d, want %d", g.detector.X, cfg.DetectorMaxX())
	}

	stepN(g, 200, input(core.ActionLeft))
	if g.detector.X != cfg.Detector.MinX {
		t.Errorf("detector x = %d, want %d", g.detector.X, cfg.Detector.MinX)
	}

	before := g.detector.X
	stepN(g, 10, input(core.ActionLeft, core.ActionRight))
	if g.detector.X != before {
		t.Errorf("both directions held moved detector from %d to %d", before, g.detector.X)
	}
}

func TestCatchPhoton(t *testing.T) {
	g := newTestGame(t, true, true)
	empty := core.NewInputFrame()

	dropOnDetector(g)
	res := g.Step(empty)

	if !core.HasEvent(res.Events, core.EventPhotonCaught) {
		t.Fatal("expected PhotonCaught event")
	}
	if res.State.Score != 1 {
		t.Errorf("score = %d, want 1", res.State.Score)
	}

	snap := g.Snapshot()
	if len(snap.Photons) != 0 {
		t.Errorf("caught photon should be removed, %d left", len(snap.Photons))
	}
	if len(snap.Pairs) != 1 || len(snap.Sparks) != 1 || len(snap.Bands) != 1 {
		t.Fatalf("pairs=%d sparks=%d bands=%d, want 1 each", len(snap.Pairs), len(snap.Sparks), len(snap.Bands))
	}
	if snap.Pairs[0].Y != float64(g.detector.Y) {
		t.Errorf("pair y = %v, want detector y %d", snap.Pairs[0].Y, g.detector.Y)
	}
	if !snap.BulbGlow || !snap.LegendHighlight {
		t.Error("catch should light the bulb and highlight the legend")
	}

	// The spark lives 10 ticks including the catch tick
	stepN(g, 8, empty)
	if len(g.sparks) != 1 {
		t.Errorf("spark removed early")
	}
	g.Step(empty)
	if len(g.sparks) != 0 {
		t.Errorf("spark should be removed after its lifetime")
	}

	// The pair lives 80 ticks including the catch tick
	stepN(g, 69, empty)
	if len(g.pairs) != 1 {
		t.Errorf("pair removed early")
	}
	g.Step(empty)
	if len(g.pairs) != 0 {
		t.Errorf("pair should be removed after its lifetime")
	}

	// The band transition takes move + 1 + stay ticks
	stepN(g, 10, empty)
	if len(g.bands) != 1 || len(g.electrons) != 0 {
		t.Fatalf("band settled early: bands=%d electrons=%d", len(g.bands), len(g.electrons))
	}
	g.Step(empty)
	if len(g.bands) != 0 {
		t.Fatalf("band should be finished, %d left", len(g.bands))
	}
	if len(g.electrons) != 1 || len(g.holes) != 1 {
		t.Fatalf("electrons=%d holes=%d, want 1 each", len(g.electrons), len(g.holes))
	}

	band := g.Config().Band
	e, h := g.electrons[0], g.holes[0]
	if e.X < float64(band.ElectronBox.MinX) || e.X > float64(band.ElectronBox.MaxX) ||
		e.Y < float64(band.ElectronBox.MinY) || e.Y > float64(band.ElectronBox.MaxY) {
		t.Errorf("electron %v outside conduction band box", e)
	}
	if h.X < float64(band.HoleBox.MinX) || h.X > float64(band.HoleBox.MaxX) ||
		h.Y < float64(band.HoleBox.MinY) || h.Y > float64(band.HoleBox.MaxY) {
		t.Errorf("hole %v outside valence band box", h)
	}
}

func TestMissedPhotonRemoved(t *testing.T) {
	g := newTestGame(t, true, true)
	g.photons = append(g.photons, Photon{Pos: core.Vec{X: 20, Y: 598}, Speed: 4})

	res := g.Step(core.NewInputFrame())
	if len(g.photons) != 0 {
		t.Errorf("photon below the screen should be removed")
	}
	if res.State.Score != 0 {
		t.Errorf("missed photon changed score to %d", res.State.Score)
	}
}

func TestPhotonSpawnBounds(t *testing.T) {
	cfg := config.DefaultPhotonConfig()
	cfg.Photon.SpawnOneIn = 1
	g := NewWithConfig(cfg, quiz.DefaultBank(), true)
	g.Reset(testRuntime)

	empty := core.NewInputFrame()
	for range 100 {
		g.Step(empty)
		for _, p := range g.photons {
			if p.Pos.X < float64(cfg.Photon.MinX) || p.Pos.X > float64(cfg.World.Width-cfg.Photon.RightMargin) {
				t.Fatalf("photon x %v outside spawn range", p.Pos.X)
			}
			if p.Speed < float64(cfg.Photon.MinSpeed) || p.Speed > float64(cfg.Photon.MaxSpeed) {
				t.Fatalf("photon speed %v outside [%d, %d]", p.Speed, cfg.Photon.MinSpeed, cfg.Photon.MaxSpeed)
			}
		}
	}
}

func TestQuizRunsOnce(t *testing.T) {
	g := newTestGame(t, false, true)
	empty := core.NewInputFrame()
	g.Step(input(core.ActionConfirm))

	quizAfter := g.Config().Timing.QuizAfterTicks
	stepN(g, quizAfter-1, empty)
	if g.State().Phase != core.PhasePlaying {
		t.Fatalf("quiz started early, phase = %v", g.State().Phase)
	}

	res := g.Step(empty)
	if res.State.Phase != core.PhaseQuiz {
		t.Fatalf("phase at %d play ticks = %v, want quiz", quizAfter, res.State.Phase)
	}
	if !core.HasEvent(res.Events, core.EventQuizStarted) {
		t.Error("expected QuizStarted event")
	}

	// The world is frozen while the quiz waits for answers
	before := g.Snapshot()
	stepN(g, 50, input(core.ActionRight))
	after := g.Snapshot()
	if before.Detector.X != after.Detector.X || before.PlayTicks != after.PlayTicks {
		t.Error("world should not advance during the quiz")
	}

	bank := quiz.DefaultBank()
	for i, q := range bank.Questions {
		res = g.Step(input(core.AnswerActions[q.Correct]))
		if !core.HasEvent(res.Events, core.EventQuizAnswered) {
			t.Fatalf("question %d: expected QuizAnswered event", i+1)
		}
	}

	if !core.HasEvent(res.Events, core.EventQuizFinished) {
		t.Fatal("expected QuizFinished after the last answer")
	}
	for _, ev := range res.Events {
		if ev.Kind == core.EventQuizFinished && (ev.Score != bank.Len() || ev.Total != bank.Len()) {
			t.Errorf("QuizFinished score = %d/%d, want %d/%d", ev.Score, ev.Total, bank.Len(), bank.Len())
		}
	}
	if res.State.Phase != core.PhaseQuizResult || !res.State.QuizTaken || res.State.QuizScore != bank.Len() {
		t.Errorf("state after quiz = %+v", res.State)
	}

	stepN(g, g.Config().Timing.QuizResultTicks, empty)
	if g.State().Phase != core.PhasePlaying {
		t.Fatalf("phase after result = %v, want playing", g.State().Phase)
	}

	for range 2 * quizAfter {
		if res := g.Step(empty); res.State.Phase != core.PhasePlaying {
			t.Fatalf("quiz should run only once, phase = %v", res.State.Phase)
		}
	}
}

func TestQuizWrongAnswers(t *testing.T) {
	g := newTestGame(t, false, true)
	g.Step(input(core.ActionConfirm))
	stepN(g, g.Config().Timing.QuizAfterTicks, core.NewInputFrame())

	bank := quiz.DefaultBank()
	for _, q := range bank.Questions {
		wrong := (q.Correct + 1) % quiz.OptionCount
		g.Step(input(core.AnswerActions[wrong]))
	}

	s := g.State()
	if s.QuizScore != 0 || !s.QuizTaken {
		t.Errorf("quiz score = %d taken = %v, want 0 and true", s.QuizScore, s.QuizTaken)
	}
	if g.Snapshot().QuizPassed {
		t.Error("zero score should not pass")
	}
}

func TestApplicationRotation(t *testing.T) {
	g := newTestGame(t, true, true)
	empty := core.NewInputFrame()
	ticks := g.Config().Timing.ApplicationTicks

	if g.appIndex != 0 {
		t.Fatalf("app index = %d after reset, want 0", g.appIndex)
	}
	g.Step(empty)
	if g.appIndex != 1 {
		t.Errorf("app index = %d after first tick, want 1", g.appIndex)
	}
	stepN(g, ticks-1, empty)
	if g.appIndex != 1 {
		t.Errorf("app index = %d before second rotation, want 1", g.appIndex)
	}
	g.Step(empty)
	if g.appIndex != 2 {
		t.Errorf("app index = %d after %d more ticks, want 2", g.appIndex, ticks)
	}
	stepN(g, ticks*(len(Applications)-1), empty)
	if g.appIndex != 1 {
		t.Errorf("app index = %d after full cycle, want 1", g.appIndex)
	}
}

func TestPauseFreezes(t *testing.T) {
	g := newTestGame(t, true, false)
	empty := core.NewInputFrame()
	stepN(g, 30, empty)

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	before := g.Snapshot()
	stepN(g, 100, input(core.ActionRight))
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused game should not change")
	}

	res = g.Step(input(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestQuitEndsSession(t *testing.T) {
	g := newTestGame(t, true, true)
	dropOnDetector(g)
	g.Step(core.NewInputFrame())

	res := g.Step(input(core.ActionQuit))
	if !res.State.GameOver {
		t.Fatal("quit should end the session")
	}
	if res.State.Score != 1 {
		t.Errorf("score after quit = %d, want 1", res.State.Score)
	}

	tick := g.tickCount
	g.Step(core.NewInputFrame())
	if g.tickCount != tick {
		t.Error("finished game should not advance")
	}
}

func TestResetClearsState(t *testing.T) {
	g := newTestGame(t, true, true)
	dropOnDetector(g)
	stepN(g, 200, core.NewInputFrame())

	g.Reset(testRuntime)
	snap := g.Snapshot()
	if snap.Score != 0 || len(snap.Electrons) != 0 || len(snap.Holes) != 0 || snap.Tick != 0 {
		t.Errorf("reset left state behind: %+v", snap)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%90 < 40:
			inputs[i].Set(core.ActionLeft)
		case i%90 < 80:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, true, false)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != 900 {
		t.Errorf("tick = %d, want 900", snap1.Tick)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	g := newTestGame(t, true, true)
	dropOnDetector(g)
	g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	snap.Sparks[0].Particles[0].Life = -99
	snap.Stars[0].Pos.X = -1

	if g.sparks[0].Particles[0].Life == -99 || g.stars[0].Pos.X == -1 {
		t.Error("mutating a snapshot changed the game")
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, true, true)
	dropOnDetector(g)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(100, 30)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Photons Caught: 1") {
		t.Errorf("HUD row = %q, want caught counter", screen.Row(0))
	}
	out := screen.String()
	for _, want := range []string{"Applications", Applications[g.appIndex].Title, LegendPhoton, LabelConduction, LabelValence} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderKeepsBandLabels(t *testing.T) {
	g := newTestGame(t, true, true)
	band := g.Config().Band
	settle := band.MoveFrames + band.StayFrames + 2
	empty := core.NewInputFrame()

	for range 8 {
		dropOnDetector(g)
		g.Step(empty)
		stepN(g, settle, empty)
	}
	if len(g.holes) == 0 || len(g.electrons) == 0 {
		t.Fatalf("expected settled carriers, got %d electrons %d holes", len(g.electrons), len(g.holes))
	}

	for _, size := range [][2]int{{100, 30}, {60, 20}, {160, 48}} {
		screen := core.NewScreen(size[0], size[1])
		g.Render(screen)
		out := screen.String()
		for _, want := range []string{LabelConduction, LabelValence} {
			if !strings.Contains(out, want) {
				t.Errorf("%dx%d: label %q hidden by carriers:\n%s", size[0], size[1], want, out)
			}
		}
	}
}

func TestRenderPhases(t *testing.T) {
	g := newTestGame(t, false, true)
	screen := core.NewScreen(120, 30)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Photon → Power") {
		t.Error("intro should show the title")
	}

	g.Step(input(core.ActionConfirm))
	stepN(g, g.Config().Timing.QuizAfterTicks, core.NewInputFrame())
	g.Render(screen)
	first := quiz.DefaultBank().Questions[0]
	if !strings.Contains(screen.String(), first.Prompt) {
		t.Errorf("quiz screen should show %q", first.Prompt)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, true, true)
	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too small message")
	}
}
