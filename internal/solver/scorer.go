// internal/solver/scorer.go
//
// Ranking of guesses by expected information gain.
// Responsibilities:
//   - Score every guess in the pool against the current candidate set (in parallel).
//   - Cache rankings per candidate set, keyed by size + fingerprint.
//   - Apply the explicit performance knobs in Config (target sampling, answer-only pool).
//   - Short-circuit the first guess of a game to a precomputed opening ranking.

package solver

import (
	"encoding/binary"
	"math/rand"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Config holds the exactness/speed trade-offs of the scorer.
type Config struct {
	// SampleThreshold enables target sampling for candidate sets larger than it.
	// 0 disables sampling entirely.
	SampleThreshold int
	// SampleSize is the number of targets drawn when sampling.
	SampleSize int
	// FullAnalysisLimit keeps exact scoring for sets up to this size even above SampleThreshold.
	FullAnalysisLimit int
	// AnswerPoolLimit restricts guesses to the candidates themselves at or below this size.
	AnswerPoolLimit int
	// Seed makes sampling reproducible. The same seed and candidate set always draw the same sample.
	Seed int64
	// Workers bounds the goroutines used to score one ranking.
	Workers int
}

// DefaultConfig mirrors the production tuning: sample 500 targets once more
// than 1000 candidates remain, and guess only candidates when 10 or fewer remain.
func DefaultConfig() Config {
	return Config{
		SampleThreshold:   500,
		SampleSize:        500,
		FullAnalysisLimit: 1000,
		AnswerPoolLimit:   10,
		Seed:              1,
		Workers:           runtime.NumCPU(),
	}
}

// ExactConfig is DefaultConfig with sampling disabled.
func ExactConfig() Config {
	c := DefaultConfig()
	c.SampleThreshold = 0
	return c
}

type cacheKey struct {
	n  int
	fp [32]byte
}

// Scorer ranks guesses for candidate sets drawn from one dictionary.
// Rankings returned by Rank are shared with the cache and must not be modified.
type Scorer struct {
	all    []string
	dictFP [32]byte
	cfg    Config
	encode EncodeFunc

	mu      sync.Mutex
	cache   map[cacheKey][]ScoredWord
	opening []ScoredWord
}

// NewScorer builds a scorer over dict. A nil patterns cache encodes without memoization.
func NewScorer(dict *words.Dictionary, patterns *game.PatternCache, cfg Config) *Scorer {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	encode := EncodeFunc(game.Encode)
	if patterns != nil {
		encode = patterns.Encode
	}
	all := dict.Words()
	return &Scorer{
		all:    all,
		dictFP: words.Fingerprint(all),
		cfg:    cfg,
		encode: encode,
		cache:  make(map[cacheKey][]ScoredWord),
	}
}

// Config returns the scorer configuration.
func (s *Scorer) Config() Config { return s.cfg }

// UseOpening installs a precomputed ranking returned for the full dictionary.
// An empty ranking turns the shortcut off.
func (s *Scorer) UseOpening(r []ScoredWord) {
	s.mu.Lock()
	s.opening = slices.Clone(r)
	s.mu.Unlock()
}

// Score is the entropy of guessing word against every candidate.
func (s *Scorer) Score(word string, candidates []string) float64 {
	return Entropy(word, candidates, s.encode)
}

// Rank returns the guess pool ordered by entropy over candidates.
// Candidates must be a subset of the dictionary; an empty set ranks nothing.
func (s *Scorer) Rank(candidates []string) []ScoredWord {
	if len(candidates) == 0 {
		return nil
	}
	key := cacheKey{n: len(candidates), fp: words.Fingerprint(candidates)}

	s.mu.Lock()
	if r, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return r
	}
	opening := s.opening
	s.mu.Unlock()

	if len(opening) > 0 && key.n == len(s.all) && key.fp == s.dictFP {
		return opening
	}

	r := s.rank(candidates, key.fp)

	s.mu.Lock()
	s.cache[key] = r
	s.mu.Unlock()
	return r
}

// Clear drops every cached ranking.
func (s *Scorer) Clear() {
	s.mu.Lock()
	s.cache = make(map[cacheKey][]ScoredWord)
	s.mu.Unlock()
}

// CacheLen reports the number of cached rankings.
func (s *Scorer) CacheLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

// ComputeOpening ranks the full dictionary with the general algorithm, ignoring
// any installed opening, and returns the top size entries (all when size <= 0).
func (s *Scorer) ComputeOpening(size int) []ScoredWord {
	r := s.rank(s.all, s.dictFP)
	if size > 0 && size < len(r) {
		r = r[:size]
	}
	return slices.Clone(r)
}

func (s *Scorer) rank(candidates []string, fp [32]byte) []ScoredWord {
	targets := s.targets(candidates, fp)
	pool := s.all
	if len(candidates) <= s.cfg.AnswerPoolLimit {
		pool = candidates
	}

	out := make([]ScoredWord, len(pool))
	chunk := (len(pool) + s.cfg.Workers - 1) / s.cfg.Workers

	var g errgroup.Group
	g.SetLimit(s.cfg.Workers)
	for start := 0; start < len(pool); start += chunk {
		end := min(start+chunk, len(pool))
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = ScoredWord{Word: pool[i], Entropy: Entropy(pool[i], targets, s.encode)}
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	SortRanked(out)
	return out
}

// targets picks the set entropy is measured against: the candidates themselves,
// or a seeded sample of them when Config asks for sampling.
func (s *Scorer) targets(candidates []string, fp [32]byte) []string {
	n := len(candidates)
	c := s.cfg
	if c.SampleThreshold <= 0 || n <= c.SampleThreshold || n <= c.FullAnalysisLimit ||
		c.SampleSize <= 0 || c.SampleSize >= n {
		return candidates
	}

	rng := rand.New(rand.NewSource(c.Seed ^ int64(binary.BigEndian.Uint64(fp[:8]))))
	picked := rng.Perm(n)[:c.SampleSize]
	slices.Sort(picked)

	out := make([]string, len(picked))
	for i, j := range picked {
		out[i] = candidates[j]
	}
	return out
}
