package photon

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/photonics/internal/config"
	"github.com/vovakirdan/photonics/internal/core"
)

func TestRandIntInclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seenLo, seenHi := false, false
	for range 1000 {
		v := randInt(rng, 2, 4)
		if v < 2 || v > 4 {
			t.Fatalf("randInt(2, 4) = %d, out of range", v)
		}
		seenLo = seenLo || v == 2
		seenHi = seenHi || v == 4
	}
	if !seenLo || !seenHi {
		t.Error("randInt should reach both bounds")
	}

	if got := randInt(rng, 5, 5); got != 5 {
		t.Errorf("randInt(5, 5) = %d, want 5", got)
	}
}

func TestStarWraps(t *testing.T) {
	w := config.DefaultPhotonConfig().World
	rng := rand.New(rand.NewSource(1))
	s := Star{Pos: core.Vec{X: 10, Y: float64(w.Height) - 0.5}, Speed: 1}

	s.update(rng, w)

	if s.Pos.Y != 0 {
		t.Errorf("star should wrap to the top, got y=%v", s.Pos.Y)
	}
	if s.Pos.X < 0 || s.Pos.X > float64(w.Width) {
		t.Errorf("wrapped star x=%v outside the world", s.Pos.X)
	}
}

func TestDetectorClamp(t *testing.T) {
	cfg := config.DefaultPhotonConfig()
	d := newDetector(cfg)

	if d.X != 500 || d.Y != 570 {
		t.Fatalf("detector starts at (%d, %d), want (500, 570)", d.X, d.Y)
	}

	for range 200 {
		d.Move(1)
	}
	if d.X != cfg.DetectorMaxX() {
		t.Errorf("detector right limit = %d, want %d", d.X, cfg.DetectorMaxX())
	}

	for range 200 {
		d.Move(-1)
	}
	if d.X != cfg.Detector.MinX {
		t.Errorf("detector left limit = %d, want %d", d.X, cfg.Detector.MinX)
	}
}

func TestDetectorDetect(t *testing.T) {
	d := Detector{X: 500, Y: 570, W: 100, H: 15}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 550, 577, true},
		{"left edge", 500, 577, false},
		{"right edge", 600, 577, false},
		{"top edge", 550, 570, false},
		{"bottom edge", 550, 585, false},
		{"just inside", 599.9, 584.9, true},
		{"above", 550, 500, false},
		{"left of detector", 450, 577, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Photon{Pos: core.Vec{X: tt.x, Y: tt.y}}
			if got := d.Detect(p); got != tt.want {
				t.Errorf("Detect(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSparkLifetime(t *testing.T) {
	cfg := config.DefaultPhotonConfig().Spark
	rng := rand.New(rand.NewSource(3))
	s := newSpark(rng, core.Vec{X: 100, Y: 100}, cfg)

	if len(s.Particles) != cfg.Particles {
		t.Fatalf("spark has %d particles, want %d", len(s.Particles), cfg.Particles)
	}
	for _, p := range s.Particles {
		if math.Abs(p.Vel.X) > cfg.MaxVelocity || math.Abs(p.Vel.Y) > cfg.MaxVelocity {
			t.Errorf("particle velocity %v exceeds %v", p.Vel, cfg.MaxVelocity)
		}
	}

	for i := 1; i < cfg.Lifetime; i++ {
		s.update()
		if s.Dead() {
			t.Fatalf("spark dead after %d updates, want %d", i, cfg.Lifetime)
		}
	}
	s.update()
	if !s.Dead() {
		t.Error("spark should be dead after its lifetime")
	}
}

func TestPairDrift(t *testing.T) {
	p := newPair(core.Vec{X: 300, Y: 570}, 80)

	p.update(1.5)
	if p.ElectronX != 301.5 || p.HoleX != 298.5 {
		t.Errorf("after one update electron=%v hole=%v, want 301.5 and 298.5", p.ElectronX, p.HoleX)
	}
	if !p.Current {
		t.Error("pair should carry current while alive")
	}

	for range 79 {
		p.update(1.5)
	}
	if p.Timer != 0 || p.Current {
		t.Errorf("pair after lifetime: timer=%d current=%v, want 0 and false", p.Timer, p.Current)
	}
}

func TestBandTransitionTiming(t *testing.T) {
	cfg := config.DefaultPhotonConfig().Band
	b := newBandTransition(core.Vec{X: 50, Y: 460}, cfg)

	for range cfg.MoveFrames {
		if b.update(cfg) {
			t.Fatal("transition finished while moving")
		}
	}
	if b.Phase != BandMoving {
		t.Errorf("phase after move frames = %v, want moving", b.Phase)
	}
	if math.Abs(b.ElectronY-float64(cfg.ConductionY)) > 1e-9 {
		t.Errorf("electron y after move = %v, want %d", b.ElectronY, cfg.ConductionY)
	}

	b.update(cfg)
	if b.Phase != BandStaying {
		t.Errorf("phase = %v, want staying", b.Phase)
	}

	for i := 1; i < cfg.StayFrames; i++ {
		if b.update(cfg) {
			t.Fatalf("transition finished after %d stay ticks, want %d", i, cfg.StayFrames)
		}
	}
	if !b.update(cfg) {
		t.Error("transition should finish after stay frames")
	}
	if b.Phase != BandFinished {
		t.Errorf("phase = %v, expected finished", b.Phase)
	}
	if b.update(cfg) {
		t.Error("finished transition should not finish twice")
	}
}

func TestSampleNonOverlapping(t *testing.T) {
	cfg := config.DefaultPhotonConfig().Band
	rng := rand.New(rand.NewSource(11))

	var taken []core.Vec
	for range 5 {
		p := sampleNonOverlapping(rng, cfg.ElectronBox, cfg.ElectronRadius, taken, cfg.MaxAttempts, cfg.ElectronFallback)
		if p.X < float64(cfg.ElectronBox.MinX) || p.X > float64(cfg.ElectronBox.MaxX) ||
			p.Y < float64(cfg.ElectronBox.MinY) || p.Y > float64(cfg.ElectronBox.MaxY) {
			t.Fatalf("sample %v outside electron box", p)
		}
		for _, q := range taken {
			if p.Dist(q) < float64(cfg.ElectronRadius) {
				t.Errorf("sample %v overlaps %v", p, q)
			}
		}
		taken = append(taken, p)
	}
}

func TestSampleNonOverlappingFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	box := config.Box{MinX: 50, MaxX: 50, MinY: 460, MaxY: 460}
	fallback := config.Box{MinX: 0, MaxX: 0, MinY: 0, MaxY: 0}
	taken := []core.Vec{{X: 50, Y: 460}}

	p := sampleNonOverlapping(rng, box, 10, taken, 50, fallback)
	if p != (core.Vec{}) {
		t.Errorf("exhausted sampling should use fallback, got %v", p)
	}
}

func TestBandPhaseString(t *testing.T) {
	tests := map[BandPhase]string{
		BandMoving:    "moving",
		BandStaying:   "staying",
		BandFinished:  "finished",
		BandPhase(42): "unknown",
	}
	for phase, want := range tests {
		if got := phase.String(); got != want {
			t.Errorf("BandPhase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}
