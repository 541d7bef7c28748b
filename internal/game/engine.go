// internal/game/engine.go
//
// Pattern encoding for the solver.
// Responsibilities:
//   - Encode a (guess, target) pair with the classic two‑pass Wordle algorithm.
//   - Validate words against the a–z alphabet.
//
// Notes:
//   - Encode assumes both words are WordLen lowercase letters; callers validate at the boundary.
//   - Encode is pure, so PatternCache can memoize it freely.
package game

// Encode implements the standard Wordle two‑pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non‑hit) target letters by letter index.
//
// Pass 2:
//   - For each non‑hit guess letter: if there is remaining count for that letter,
//     mark Present and decrement the count; otherwise mark Miss.
//
// Hits must all be resolved before any Present is assigned, otherwise a repeated
// guess letter could claim an occurrence that a later hit needs.
func Encode(guess, target string) Pattern {
	var res Pattern

	// Letter frequency for the non‑hit positions (a–z).
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == target[i] {
			res[i] = MarkHit
		} else {
			counts[idx(target[i])]++
		}
	}

	for i := 0; i < WordLen; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(b byte) int { return int(b) - 'a' }

// IsWord reports whether s is exactly WordLen lowercase letters a–z.
func IsWord(s string) bool { return len(s) == WordLen && isAlpha(s) }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
