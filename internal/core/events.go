package core

// EventKind tags what happened during a simulation tick.
type EventKind int

const (
	EventPhotonCaught EventKind = iota
	EventQuizStarted
	EventQuizAnswered
	EventQuizFinished
)

// Event is a notification emitted by Game.Step.
// Platforms react to events with side effects the game itself cannot perform,
// like playing a sound or persisting a quiz result.
type Event struct {
	Kind EventKind

	// X, Y locate a caught photon (EventPhotonCaught).
	X, Y float64

	// Index and Correct describe an answer (EventQuizAnswered).
	Index   int
	Correct bool

	// Score and Total summarize a finished quiz (EventQuizFinished).
	Score int
	Total int
}

// HasEvent reports whether events contains at least one event of the given kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
