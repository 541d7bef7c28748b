// internal/solver/entropy.go
//
// Expected information gain of a guess over a candidate set.

package solver

import (
	"cmp"
	"math"
	"slices"

	"github.com/robalobadob/wordle-solver/internal/game"
)

// EncodeFunc computes the feedback pattern of guess against target.
type EncodeFunc func(guess, target string) game.Pattern

// ScoredWord pairs a guess with its entropy in bits.
type ScoredWord struct {
	Word    string  `json:"word"`
	Entropy float64 `json:"entropy"`
}

// Entropy returns the Shannon entropy, in bits, of the feedback patterns that
// guessing word induces over targets. It is 0 for an empty or single-pattern split.
func Entropy(word string, targets []string, encode EncodeFunc) float64 {
	if len(targets) == 0 {
		return 0
	}
	var counts [game.PatternCount]int
	for _, t := range targets {
		counts[encode(word, t).Code()]++
	}

	total := float64(len(targets))
	h := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		h -= p * math.Log2(p)
	}
	return h
}

// SortRanked orders by descending entropy, then ascending word.
func SortRanked(r []ScoredWord) {
	slices.SortFunc(r, func(a, b ScoredWord) int {
		if a.Entropy != b.Entropy {
			return cmp.Compare(b.Entropy, a.Entropy)
		}
		return cmp.Compare(a.Word, b.Word)
	})
}
