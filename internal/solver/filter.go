// internal/solver/filter.go
//
// Candidate filtering by guess feedback.

package solver

import (
	"strings"

	"github.com/robalobadob/wordle-solver/internal/game"
)

// Filter returns the candidates consistent with guess having produced feedback.
// The input slice is never modified; survivors keep their input order.
//
// Per position i:
//   - hit:     the word has guess[i] at i.
//   - present: guess[i] is in the word, but not at i.
//   - miss:    guess[i] is absent, unless the same letter is a hit or present
//     elsewhere in the guess, in which case the miss only rules out an extra copy.
func Filter(candidates []string, guess string, feedback game.Pattern) []string {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if Consistent(w, guess, feedback) {
			out = append(out, w)
		}
	}
	return out
}

// Consistent reports whether word satisfies every per-position condition of Filter.
func Consistent(word, guess string, feedback game.Pattern) bool {
	for i := 0; i < game.WordLen; i++ {
		c := guess[i]
		switch feedback[i] {
		case game.MarkHit:
			if word[i] != c {
				return false
			}
		case game.MarkPresent:
			if strings.IndexByte(word, c) < 0 || word[i] == c {
				return false
			}
		default:
			if strings.IndexByte(word, c) >= 0 && !claimedElsewhere(guess, feedback, i) {
				return false
			}
		}
	}
	return true
}

// claimedElsewhere reports whether guess[i] is marked hit or present at another position.
func claimedElsewhere(guess string, feedback game.Pattern, i int) bool {
	for j := 0; j < game.WordLen; j++ {
		if j != i && guess[j] == guess[i] && feedback[j] != game.MarkMiss {
			return true
		}
	}
	return false
}
