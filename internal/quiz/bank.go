// Package quiz implements the multiple-choice quiz shown during a photon
// game session: the question bank and the answering state machine.
package quiz

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OptionCount is the number of options every question offers (keys 1-4).
const OptionCount = 4

//go:embed questions/default.yaml
var defaultBankYAML []byte

// Question is a single multiple-choice question.
type Question struct {
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"` // Zero-based index into Options
}

// ErrInvalidQuestion is wrapped by every question validation failure.
var ErrInvalidQuestion = errors.New("invalid question")

// Validate checks that the question can be asked with number keys 1-4.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidQuestion)
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("%w: %q has %d options, expected %d", ErrInvalidQuestion, q.Prompt, len(q.Options), OptionCount)
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("%w: %q has correct index %d out of range", ErrInvalidQuestion, q.Prompt, q.Correct)
	}
	return nil
}

// Bank is an ordered list of questions.
type Bank struct {
	Questions []Question `yaml:"questions"`
}

// Len returns the number of questions.
func (b Bank) Len() int {
	return len(b.Questions)
}

// Validate checks every question and rejects an empty bank.
func (b Bank) Validate() error {
	if len(b.Questions) == 0 {
		return fmt.Errorf("%w: bank has no questions", ErrInvalidQuestion)
	}
	for i, q := range b.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

// ParseBank decodes a YAML question bank.
func ParseBank(data []byte) (Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Bank{}, fmt.Errorf("quiz: cannot parse bank: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Bank{}, fmt.Errorf("quiz: %w", err)
	}
	return b, nil
}

// LoadBank reads a YAML question bank from path.
// An empty path returns the built-in bank.
func LoadBank(path string) (Bank, error) {
	if path == "" {
		return DefaultBank(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("quiz: cannot read bank %s: %w", path, err)
	}
	return ParseBank(data)
}

// DefaultBank returns the five built-in questions.
func DefaultBank() Bank {
	b, err := ParseBank(defaultBankYAML)
	if err != nil {
		// The embedded file is part of the binary; failing here is a build defect.
		panic(err)
	}
	return b
}
