// internal/game/types.go
//
// Core type definitions for feedback patterns.
// Defines:
//   - Mark: per-letter feedback for a guess (hit/present/miss).
//   - Pattern: the five marks produced by one guess against one target.

package game

import (
	"errors"
	"fmt"
	"strings"
)

// WordLen is the number of letters in every word the solver handles.
const WordLen = 5

// PatternCount is the number of distinct patterns (3^WordLen).
const PatternCount = 243

// ErrInvalidInput reports a malformed guess or feedback string.
var ErrInvalidInput = errors.New("invalid input")

// Mark represents the evaluation result for a single letter in a guess.
// The numeric values are the base-3 digits used by Pattern.Code: 0=miss, 1=present, 2=hit.
type Mark uint8

const (
	MarkMiss    Mark = iota // letter absent (respecting multiplicity), shown black
	MarkPresent             // letter elsewhere in the target, shown yellow
	MarkHit                 // letter in the correct position, shown green
)

// Letter returns the feedback letter used on the wire: 'b', 'y' or 'g'.
func (m Mark) Letter() byte {
	switch m {
	case MarkHit:
		return 'g'
	case MarkPresent:
		return 'y'
	default:
		return 'b'
	}
}

func (m Mark) String() string {
	switch m {
	case MarkHit:
		return "hit"
	case MarkPresent:
		return "present"
	default:
		return "miss"
	}
}

// Pattern is the feedback for a whole guess. It is comparable and can be used as a map key.
type Pattern [WordLen]Mark

// AllHit is the pattern of a solved guess.
var AllHit = Pattern{MarkHit, MarkHit, MarkHit, MarkHit, MarkHit}

// Code packs the pattern into a base-3 index in [0, PatternCount).
func (p Pattern) Code() int {
	c := 0
	for i := WordLen - 1; i >= 0; i-- {
		c = c*3 + int(p[i])
	}
	return c
}

// Solved reports whether every mark is a hit.
func (p Pattern) Solved() bool { return p == AllHit }

// String renders the pattern in g/y/b notation, e.g. "gybbg".
func (p Pattern) String() string {
	var b [WordLen]byte
	for i, m := range p {
		b[i] = m.Letter()
	}
	return string(b[:])
}

// MarshalText encodes the pattern as its g/y/b string.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a g/y/b string.
func (p *Pattern) UnmarshalText(b []byte) error {
	parsed, err := ParsePattern(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePattern reads feedback written with g (hit), y (present) and b (miss).
// Letters are case-insensitive; surrounding whitespace is ignored.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != WordLen {
		return p, fmt.Errorf("%w: feedback must be %d letters, got %q", ErrInvalidInput, WordLen, s)
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'g':
			p[i] = MarkHit
		case 'y':
			p[i] = MarkPresent
		case 'b':
			p[i] = MarkMiss
		default:
			return Pattern{}, fmt.Errorf("%w: feedback must only contain g, y, or b, got %q", ErrInvalidInput, s)
		}
	}
	return p, nil
}

// NormalizeGuess lowercases and trims a guess and checks it is WordLen letters a–z.
func NormalizeGuess(s string) (string, error) {
	g := strings.ToLower(strings.TrimSpace(s))
	if !IsWord(g) {
		return "", fmt.Errorf("%w: guess must be %d letters a-z, got %q", ErrInvalidInput, WordLen, s)
	}
	return g, nil
}
