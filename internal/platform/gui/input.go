package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/photonics/internal/core"
)

// heldKeys are polled every tick and stay active while down.
var heldKeys = map[ebiten.Key]core.Action{
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
}

// pressedKeys fire once per key press.
var pressedKeys = map[ebiten.Key]core.Action{
	ebiten.Key1:       core.ActionAnswer1,
	ebiten.KeyNumpad1: core.ActionAnswer1,
	ebiten.Key2:       core.ActionAnswer2,
	ebiten.KeyNumpad2: core.ActionAnswer2,
	ebiten.Key3:       core.ActionAnswer3,
	ebiten.KeyNumpad3: core.ActionAnswer3,
	ebiten.Key4:       core.ActionAnswer4,
	ebiten.KeyNumpad4: core.ActionAnswer4,
	ebiten.KeyEnter:   core.ActionConfirm,
	ebiten.KeySpace:   core.ActionConfirm,
	ebiten.KeyP:       core.ActionPause,
	ebiten.KeyR:       core.ActionRestart,
}

// inputState builds one input frame per tick from the keyboard.
type inputState struct {
	frame core.InputFrame
}

func (s *inputState) poll() core.InputFrame {
	s.frame.Clear()
	for key, action := range heldKeys {
		if ebiten.IsKeyPressed(key) {
			s.frame.Set(action)
		}
	}
	for key, action := range pressedKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.frame.Set(action)
		}
	}
	return s.frame.Clone()
}
