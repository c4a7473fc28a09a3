package photon

import (
	"math/rand"

	"github.com/vovakirdan/photonics/internal/config"
	"github.com/vovakirdan/photonics/internal/core"
)

// randInt returns a uniform integer in [lo, hi], both inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// randFloat returns a uniform float in [lo, hi).
func randFloat(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Star is a background decoration drifting slowly downwards.
type Star struct {
	Pos   core.Vec
	Speed float64
}

func newStar(rng *rand.Rand, w config.WorldConfig) Star {
	return Star{
		Pos:   core.Vec{X: float64(randInt(rng, 0, w.Width)), Y: float64(randInt(rng, 0, w.Height))},
		Speed: randFloat(rng, w.StarMinSpeed, w.StarMaxSpeed),
	}
}

// update moves the star down, wrapping to the top at a new column.
func (s *Star) update(rng *rand.Rand, w config.WorldConfig) {
	s.Pos.Y += s.Speed
	if s.Pos.Y > float64(w.Height) {
		s.Pos.Y = 0
		s.Pos.X = float64(randInt(rng, 0, w.Width))
	}
}

// Photon is a falling light particle.
type Photon struct {
	Pos   core.Vec
	Speed float64
}

// fall advances the photon by one tick.
func (p *Photon) fall() {
	p.Pos.Y += p.Speed
}

// Detector is the player-controlled paddle at the bottom of the playfield.
type Detector struct {
	X, Y  int
	W, H  int
	Speed int
	MinX  int
	MaxX  int
}

func newDetector(cfg config.PhotonConfig) Detector {
	d := Detector{
		X:     cfg.World.Width / 2,
		Y:     cfg.World.Height - cfg.Detector.BottomOffset,
		W:     cfg.Detector.Width,
		H:     cfg.Detector.Height,
		Speed: cfg.Detector.Speed,
		MinX:  cfg.Detector.MinX,
		MaxX:  cfg.DetectorMaxX(),
	}
	d.X = core.Clamp(d.X, d.MinX, d.MaxX)
	return d
}

// Move shifts the detector by one step in dir (-1 left, +1 right)
// and clamps it to [MinX, MaxX].
func (d *Detector) Move(dir int) {
	d.X += dir * d.Speed
	d.X = core.Clamp(d.X, d.MinX, d.MaxX)
}

// Detect reports whether the photon center lies strictly inside the detector.
func (d Detector) Detect(p Photon) bool {
	x, y := float64(d.X), float64(d.Y)
	return x < p.Pos.X && p.Pos.X < x+float64(d.W) &&
		y < p.Pos.Y && p.Pos.Y < y+float64(d.H)
}

// Rect returns the detector's bounding box.
func (d Detector) Rect() core.Rect {
	return core.NewRect(d.X, d.Y, d.W, d.H)
}

// SparkParticle is one point of a spark burst.
type SparkParticle struct {
	Pos  core.Vec
	Vel  core.Vec
	Life int
}

// Spark is a short-lived burst of particles at a catch point.
type Spark struct {
	Particles []SparkParticle
}

func newSpark(rng *rand.Rand, at core.Vec, cfg config.SparkConfig) Spark {
	s := Spark{Particles: make([]SparkParticle, cfg.Particles)}
	for i := range s.Particles {
		s.Particles[i] = SparkParticle{
			Pos: at,
			Vel: core.Vec{
				X: randFloat(rng, -cfg.MaxVelocity, cfg.MaxVelocity),
				Y: randFloat(rng, -cfg.MaxVelocity, cfg.MaxVelocity),
			},
			Life: cfg.Lifetime,
		}
	}
	return s
}

func (s *Spark) update() {
	for i := range s.Particles {
		p := &s.Particles[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
	}
}

// Dead reports whether every particle has expired.
func (s Spark) Dead() bool {
	for _, p := range s.Particles {
		if p.Life > 0 {
			return false
		}
	}
	return true
}

// ElectronHolePair is a freshly generated carrier pair drifting apart.
// While Current is set the pair feeds the wire to the bulb.
type ElectronHolePair struct {
	ElectronX float64
	HoleX     float64
	Y         float64
	Timer     int
	Current   bool
}

func newPair(at core.Vec, lifetime int) ElectronHolePair {
	return ElectronHolePair{
		ElectronX: at.X,
		HoleX:     at.X,
		Y:         at.Y,
		Timer:     lifetime,
		Current:   true,
	}
}

func (p *ElectronHolePair) update(drift float64) {
	p.ElectronX += drift
	p.HoleX -= drift
	p.Timer--
	if p.Timer <= 0 {
		p.Current = false
	}
}
