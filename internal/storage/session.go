package storage

import (
	"github.com/vovakirdan/photonics/internal/quiz"
)

// RecordSession persists the outcome of one play session: the caught count
// when it is positive, and the quiz result when the quiz was completed.
func (s *Store) RecordSession(gameID string, caught int, q *quiz.Session) error {
	if caught > 0 {
		if _, err := s.SaveScore(gameID, caught); err != nil {
			return err
		}
	}
	if q != nil && q.Done() {
		_, err := s.SaveQuizResult(QuizResult{
			GameID:  gameID,
			Score:   q.Score(),
			Total:   q.Total(),
			Answers: q.Summary(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
