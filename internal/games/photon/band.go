package photon

import (
	"math/rand"

	"github.com/vovakirdan/photonics/internal/config"
	"github.com/vovakirdan/photonics/internal/core"
)

// BandPhase is the stage of a band transition animation.
type BandPhase int

const (
	BandMoving BandPhase = iota
	BandStaying
	BandFinished
)

// String returns a human-readable name for the phase.
func (p BandPhase) String() string {
	switch p {
	case BandMoving:
		return "moving"
	case BandStaying:
		return "staying"
	case BandFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// BandTransition animates an electron rising from the valence band to the
// conduction band, above a hole whose position was chosen at creation.
type BandTransition struct {
	Hole      core.Vec
	ElectronY float64
	Phase     BandPhase
	Timer     int
}

func newBandTransition(hole core.Vec, cfg config.BandConfig) BandTransition {
	return BandTransition{
		Hole:      hole,
		ElectronY: float64(cfg.ValenceY),
		Phase:     BandMoving,
		Timer:     cfg.MoveFrames,
	}
}

// update advances the animation by one tick.
// It returns true on the tick the transition finishes; the caller then
// settles the carriers.
func (b *BandTransition) update(cfg config.BandConfig) bool {
	switch b.Phase {
	case BandMoving:
		if b.Timer > 0 {
			b.ElectronY -= float64(cfg.ValenceY-cfg.ConductionY) / float64(cfg.MoveFrames)
			b.Timer--
		} else {
			b.Phase = BandStaying
			b.Timer = cfg.StayFrames
		}
	case BandStaying:
		b.Timer--
		if b.Timer <= 0 {
			b.Phase = BandFinished
			return true
		}
	}
	return false
}

// sampleNonOverlapping picks a random point in box that is at least radius
// away from every point in taken. After maxAttempts rejected tries it returns
// an unchecked point from fallback.
func sampleNonOverlapping(rng *rand.Rand, box config.Box, radius int, taken []core.Vec, maxAttempts int, fallback config.Box) core.Vec {
	for range maxAttempts {
		p := core.Vec{
			X: float64(randInt(rng, box.MinX, box.MaxX)),
			Y: float64(randInt(rng, box.MinY, box.MaxY)),
		}
		if !overlapsAny(p, taken, float64(radius)) {
			return p
		}
	}
	return core.Vec{
		X: float64(randInt(rng, fallback.MinX, fallback.MaxX)),
		Y: float64(randInt(rng, fallback.MinY, fallback.MaxY)),
	}
}

func overlapsAny(p core.Vec, taken []core.Vec, radius float64) bool {
	for _, t := range taken {
		if p.Dist(t) < radius {
			return true
		}
	}
	return false
}
