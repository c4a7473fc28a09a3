package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionDone is returned when answering after the last question.
	ErrSessionDone = errors.New("quiz: session already finished")

	// ErrInvalidOption is returned for an option index outside 0..3.
	ErrInvalidOption = errors.New("quiz: invalid option")
)

// Answer records one response.
type Answer struct {
	Question int // Index into the bank
	Selected int
	Correct  bool
}

// Session walks through a bank one question at a time and tallies the score.
// The score is always within [0, Total()].
type Session struct {
	bank    Bank
	current int
	score   int
	answers []Answer
}

// NewSession starts a quiz over the given bank.
func NewSession(bank Bank) *Session {
	return &Session{
		bank:    bank,
		answers: make([]Answer, 0, bank.Len()),
	}
}

// Current returns the question being asked and its zero-based number.
// ok is false once every question has been answered.
func (s *Session) Current() (q Question, index int, ok bool) {
	if s.Done() {
		return Question{}, s.current, false
	}
	return s.bank.Questions[s.current], s.current, true
}

// Answer submits the selected option for the current question and advances.
func (s *Session) Answer(option int) (bool, error) {
	if s.Done() {
		return false, ErrSessionDone
	}
	q := s.bank.Questions[s.current]
	if option < 0 || option >= len(q.Options) {
		return false, fmt.Errorf("%w: %d", ErrInvalidOption, option)
	}

	correct := option == q.Correct
	if correct {
		s.score++
	}
	s.answers = append(s.answers, Answer{
		Question: s.current,
		Selected: option,
		Correct:  correct,
	})
	s.current++
	return correct, nil
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.current >= s.bank.Len()
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	return s.score
}

// Total returns the number of questions in the session.
func (s *Session) Total() int {
	return s.bank.Len()
}

// Answers returns a copy of the responses given so far.
func (s *Session) Answers() []Answer {
	out := make([]Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Passed reports whether the score reaches passMark.
func (s *Session) Passed(passMark int) bool {
	return s.score >= passMark
}

// Summary encodes the selected options as a compact string like "1-2-2-4-3"
// (one-based, as typed on the keyboard) for storage.
func (s *Session) Summary() string {
	b := make([]byte, 0, len(s.answers)*2)
	for i, a := range s.answers {
		if i > 0 {
			b = append(b, '-')
		}
		b = append(b, byte('1'+a.Selected))
	}
	return string(b)
}
