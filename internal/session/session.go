// internal/session/session.go
//
// Suggestion session for a single game.
// Responsibilities:
//   - Own the candidate set, guess history and suggestion cursor of one game.
//   - Serve the current suggestion and browse alternatives without repeats.
//   - Apply feedback atomically (validate first, then mutate).
//
// Concurrency:
//   - Suggestion reads take the read lock and may run in parallel.
//   - NextSuggestion, SubmitFeedback and Reset take the write lock.
//   - The dictionary and pattern cache may be shared across sessions.

package session

import (
	"slices"
	"sync"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Config wires a session to its scorer settings and shared caches.
type Config struct {
	Scorer solver.Config
	// Patterns is the process-wide encode cache; nil gives the session its own.
	Patterns *game.PatternCache
	// Opening is the precomputed ranking for the full dictionary; empty disables the shortcut.
	Opening []solver.ScoredWord
}

// Session tracks one game from its first suggestion to the solution.
type Session struct {
	dict     *words.Dictionary
	scorer   *solver.Scorer
	patterns *game.PatternCache

	mu         sync.RWMutex
	state      State
	candidates []string
	history    []GuessRecord
	cursor     int
	offered    map[string]struct{}
}

// Start creates a fresh session over dict.
func Start(dict *words.Dictionary, cfg Config) *Session {
	patterns := cfg.Patterns
	if patterns == nil {
		patterns = game.NewPatternCache(0)
	}
	scorer := solver.NewScorer(dict, patterns, cfg.Scorer)
	scorer.UseOpening(cfg.Opening)

	return &Session{
		dict:       dict,
		scorer:     scorer,
		patterns:   patterns,
		state:      StateFresh,
		candidates: dict.Words(),
		offered:    make(map[string]struct{}),
	}
}

// Reset starts a new game: full dictionary, empty history, cleared cursor and caches.
// The pattern cache may be shared, so clearing it only costs other sessions recomputation.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateFresh
	s.candidates = s.dict.Words()
	s.history = nil
	s.cursor = 0
	s.offered = make(map[string]struct{})
	s.scorer.Clear()
	s.patterns.Clear()
	return s.snapshotLocked()
}

// CurrentSuggestion returns the ranked word at the cursor.
func (s *Session) CurrentSuggestion() (solver.ScoredWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentLocked()
}

// Suggestion returns the current suggestion together with the snapshot it was
// ranked from. The snapshot is returned even when there are no candidates.
func (s *Session) Suggestion() (solver.ScoredWord, Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sw, err := s.currentLocked()
	return sw, s.snapshotLocked(), err
}

func (s *Session) currentLocked() (solver.ScoredWord, error) {
	ranked := s.scorer.Rank(s.candidates)
	if len(ranked) == 0 {
		return solver.ScoredWord{}, ErrNoCandidates
	}
	return ranked[s.cursor%len(ranked)], nil
}

// NextSuggestion moves the cursor to the next ranked word not yet offered this round.
// The word at the cursor counts as offered. Once every word has been offered the
// round starts over from the top of the ranking.
func (s *Session) NextSuggestion() (solver.ScoredWord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ranked := s.scorer.Rank(s.candidates)
	n := len(ranked)
	if n == 0 {
		return solver.ScoredWord{}, ErrNoCandidates
	}
	s.offered[ranked[s.cursor%n].Word] = struct{}{}

	for k := 1; k <= n; k++ {
		i := (s.cursor + k) % n
		if _, seen := s.offered[ranked[i].Word]; !seen {
			s.cursor = i
			s.offered[ranked[i].Word] = struct{}{}
			return ranked[i], nil
		}
	}

	clear(s.offered)
	s.cursor = 0
	s.offered[ranked[0].Word] = struct{}{}
	return ranked[0], nil
}

// SubmitFeedback records guess/feedback and narrows the candidates.
// Feedback uses g (hit), y (present) and b (miss). On ErrInvalidInput nothing changes.
func (s *Session) SubmitFeedback(guess, feedback string) (Snapshot, error) {
	g, err := game.NormalizeGuess(guess)
	if err != nil {
		return Snapshot{}, err
	}
	fb, err := game.ParsePattern(feedback)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, GuessRecord{Guess: g, Feedback: fb})
	clear(s.offered)
	s.cursor = 0
	s.candidates = solver.Filter(s.candidates, g, fb)
	// Earlier candidate sets cannot come back without a reset.
	s.scorer.Clear()
	if len(s.candidates) == 0 {
		s.state = StateExhausted
	} else {
		s.state = StateInProgress
	}
	return s.snapshotLocked(), nil
}

// Snapshot returns the current view without changing anything.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// State reports the lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Remaining returns a copy of the current candidate set in dictionary order.
func (s *Session) Remaining() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.candidates)
}

// History returns a copy of the guesses submitted so far.
func (s *Session) History() []GuessRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.history)
}

// Dictionary is the word list this session was started with.
func (s *Session) Dictionary() *words.Dictionary { return s.dict }

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:           s.state,
		RemainingCount:  len(s.candidates),
		RemainingSample: slices.Clone(s.candidates[:min(SampleLimit, len(s.candidates))]),
		History:         slices.Clone(s.history),
	}
	if snap.History == nil {
		snap.History = []GuessRecord{}
	}
	if ranked := s.scorer.Rank(s.candidates); len(ranked) > 0 {
		snap.NextGuess = ranked[s.cursor%len(ranked)].Word
	}
	return snap
}
