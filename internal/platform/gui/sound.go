package gui

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/photonics/internal/assets"
)

// sound owns the audio context and the catch sound player.
type sound struct {
	ctx *audio.Context
	zap *audio.Player
}

func newSound(pcm []byte) *sound {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(assets.SampleRate))
	}
	s := &sound{ctx: ctx}
	if len(pcm) > 0 {
		s.zap = ctx.NewPlayerFromBytes(pcm)
		s.zap.SetVolume(0.6)
	}
	return s
}

// playZap restarts the catch sound from the beginning.
func (s *sound) playZap(logger *log.Logger) {
	if s.zap == nil {
		return
	}
	if err := s.zap.Rewind(); err != nil {
		logger.Debug("zap rewind failed", "err", err)
		return
	}
	s.zap.Play()
}
