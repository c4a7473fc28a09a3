package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBank(t *testing.T) {
	b := DefaultBank()

	if b.Len() != 5 {
		t.Fatalf("default bank should have 5 questions, got %d", b.Len())
	}
	if err := b.Validate(); err != nil {
		t.Errorf("default bank should validate: %v", err)
	}

	// Spot-check the answer key
	expected := []int{0, 1, 1, 1, 2}
	for i, q := range b.Questions {
		if q.Correct != expected[i] {
			t.Errorf("question %d correct = %d, expected %d", i+1, q.Correct, expected[i])
		}
	}
}

func TestSessionAllCorrect(t *testing.T) {
	b := DefaultBank()
	s := NewSession(b)

	for !s.Done() {
		q, _, ok := s.Current()
		if !ok {
			t.Fatal("Current() should be ok before Done()")
		}
		correct, err := s.Answer(q.Correct)
		if err != nil {
			t.Fatalf("Answer() failed: %v", err)
		}
		if !correct {
			t.Error("answering the correct index should report correct")
		}
	}

	if s.Score() != 5 || s.Total() != 5 {
		t.Errorf("score = %d/%d, expected 5/5", s.Score(), s.Total())
	}
	if !s.Passed(3) {
		t.Error("5/5 should pass with mark 3")
	}
	if s.Summary() != "1-2-2-2-3" {
		t.Errorf("Summary() = %q", s.Summary())
	}
}

func TestSessionScoreBounds(t *testing.T) {
	// Every possible fixed-answer strategy keeps the score within [0, 5]
	for option := 0; option < OptionCount; option++ {
		s := NewSession(DefaultBank())
		for !s.Done() {
			if _, err := s.Answer(option); err != nil {
				t.Fatalf("Answer(%d) failed: %v", option, err)
			}
		}
		if s.Score() < 0 || s.Score() > 5 {
			t.Errorf("always answering %d gave score %d outside [0, 5]", option+1, s.Score())
		}
	}

	// Always answering "4" gets everything wrong
	s := NewSession(DefaultBank())
	for !s.Done() {
		s.Answer(3)
	}
	if s.Score() != 0 {
		t.Errorf("always answering 4 should score 0, got %d", s.Score())
	}
	if s.Passed(3) {
		t.Error("0/5 should not pass")
	}
}

func TestSessionErrors(t *testing.T) {
	s := NewSession(DefaultBank())

	if _, err := s.Answer(4); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Answer(4) error = %v, expected ErrInvalidOption", err)
	}
	if _, err := s.Answer(-1); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Answer(-1) error = %v, expected ErrInvalidOption", err)
	}
	// Invalid answers do not advance
	if _, idx, _ := s.Current(); idx != 0 {
		t.Errorf("invalid answers should not advance, at question %d", idx)
	}

	for !s.Done() {
		s.Answer(0)
	}
	if _, err := s.Answer(0); !errors.Is(err, ErrSessionDone) {
		t.Errorf("Answer after Done error = %v, expected ErrSessionDone", err)
	}
	if _, _, ok := s.Current(); ok {
		t.Error("Current() should not be ok after Done()")
	}
}

func TestSessionAnswersCopy(t *testing.T) {
	s := NewSession(DefaultBank())
	s.Answer(0)

	answers := s.Answers()
	answers[0].Selected = 3

	if s.Answers()[0].Selected != 0 {
		t.Error("Answers() should return a copy")
	}
}

func TestParseBankValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty bank", "questions: []"},
		{"three options", "questions:\n  - prompt: q\n    options: [a, b, c]\n    correct: 0\n"},
		{"correct out of range", "questions:\n  - prompt: q\n    options: [a, b, c, d]\n    correct: 4\n"},
		{"empty prompt", "questions:\n  - prompt: \"\"\n    options: [a, b, c, d]\n    correct: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseBank([]byte(tc.yaml)); !errors.Is(err, ErrInvalidQuestion) {
				t.Errorf("ParseBank() error = %v, expected ErrInvalidQuestion", err)
			}
		})
	}

	if _, err := ParseBank([]byte("questions: {")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadBank(t *testing.T) {
	b, err := LoadBank("")
	if err != nil || b.Len() != 5 {
		t.Fatalf("LoadBank(\"\") = %d questions, %v", b.Len(), err)
	}

	path := filepath.Join(t.TempDir(), "bank.yaml")
	data := []byte("questions:\n  - prompt: \"Light is made of?\"\n    options: [Photons, Holes, Protons, Sound]\n    correct: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	b, err = LoadBank(path)
	if err != nil {
		t.Fatalf("LoadBank(custom) failed: %v", err)
	}
	if b.Len() != 1 || b.Questions[0].Options[0] != "Photons" {
		t.Errorf("unexpected custom bank: %+v", b)
	}

	if _, err := LoadBank(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadBank of a missing file should fail")
	}
}
