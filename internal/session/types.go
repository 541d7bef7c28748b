// internal/session/types.go
//
// Type definitions for a solver session.
// Defines:
//   - State: fresh → in_progress → exhausted.
//   - GuessRecord: one submitted guess and the feedback it received.
//   - Snapshot: the caller-facing view returned after reset and each feedback.

package session

import (
	"errors"

	"github.com/robalobadob/wordle-solver/internal/game"
)

// SampleLimit is the maximum number of remaining words included in a Snapshot.
const SampleLimit = 20

var (
	// ErrNoCandidates means the feedback so far is contradictory; only Reset recovers.
	ErrNoCandidates = errors.New("no possible words remaining")
	// ErrInvalidInput is returned for a malformed guess or feedback. The session is left untouched.
	ErrInvalidInput = game.ErrInvalidInput
)

// State is the coarse lifecycle of a session.
type State string

const (
	StateFresh      State = "fresh"       // no feedback submitted yet
	StateInProgress State = "in_progress" // at least one guess, candidates remain
	StateExhausted  State = "exhausted"   // the candidate set is empty
)

// GuessRecord is one entry of the guess history.
type GuessRecord struct {
	Guess    string       `json:"guess"`
	Feedback game.Pattern `json:"feedback"`
}

// Snapshot summarizes a session after a mutation.
type Snapshot struct {
	State           State         `json:"state"`
	RemainingCount  int           `json:"remaining_count"`
	RemainingSample []string      `json:"remaining_words"`
	NextGuess       string        `json:"next_guess"`
	History         []GuessRecord `json:"history"`
}
