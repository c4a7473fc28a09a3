package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionLeft) {
		t.Error("empty frame should not have ActionLeft")
	}

	f.Set(ActionLeft)
	f.Set(ActionPause)
	if !f.Has(ActionLeft) || !f.Has(ActionPause) {
		t.Error("frame should have the actions that were set")
	}
	if f.Has(ActionRight) {
		t.Error("frame should not have ActionRight")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionRight) {
		t.Error("clone should keep actions after the original is cleared")
	}
}

func TestInputFrameAnswerIndex(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected int
	}{
		{"no answer", []Action{ActionLeft}, -1},
		{"first option", []Action{ActionAnswer1}, 0},
		{"fourth option", []Action{ActionAnswer4}, 3},
		{"lowest wins", []Action{ActionAnswer3, ActionAnswer2}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.AnswerIndex(); got != tc.expected {
				t.Errorf("AnswerIndex() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionAnswer3.String() != "Answer3" {
		t.Errorf("ActionAnswer3.String() = %q", ActionAnswer3.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseQuizResult.String() != "QuizResult" {
		t.Errorf("PhaseQuizResult.String() = %q", PhaseQuizResult.String())
	}
}

func TestColorRGBA(t *testing.T) {
	orange := ColorOrange.RGBA()
	if orange.R != 255 || orange.G != 165 || orange.B != 0 {
		t.Errorf("ColorOrange.RGBA() = %v", orange)
	}
	if Color(200).RGBA() != ColorWhite.RGBA() {
		t.Error("unknown colors should fall back to white")
	}
}

func TestHasEvent(t *testing.T) {
	events := []Event{{Kind: EventQuizAnswered}, {Kind: EventPhotonCaught}}
	if !HasEvent(events, EventPhotonCaught) {
		t.Error("HasEvent should find EventPhotonCaught")
	}
	if HasEvent(events, EventQuizFinished) {
		t.Error("HasEvent should not find EventQuizFinished")
	}
}

func TestWithSessionSeed(t *testing.T) {
	var n int64
	next := func() int64 {
		n++
		return n
	}

	tests := []struct {
		name string
		seed int64
		want []int64 // Seeds of three consecutive sessions
	}{
		{"random", 0, []int64{1, 2, 3}},
		{"fixed", 42, []int64{42, 42, 42}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n = 0
			cfg := DefaultConfig()
			cfg.Seed = tc.seed
			for i, want := range tc.want {
				if got := cfg.WithSessionSeed(next).Seed; got != want {
					t.Errorf("session %d seed = %d, want %d", i, got, want)
				}
			}
			if cfg.Seed != tc.seed {
				t.Errorf("base config seed changed to %d", cfg.Seed)
			}
		})
	}
}
