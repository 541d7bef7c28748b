// internal/words/words.go
//
// Provides the solver dictionary.
//
// Responsibilities:
//   - Validate and deduplicate a word list into an immutable Dictionary.
//   - Fingerprint word sets (order-independent) for cache keys and persisted openings.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase.
//   • A Dictionary is read-only after Load and safe to share between goroutines.

package words

import (
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle-solver/internal/game"
)

var (
	ErrEmptyDictionary   = errors.New("words: dictionary is empty")
	ErrInvalidWordLength = errors.New("words: invalid word length")
	ErrInvalidWord       = errors.New("words: word must be letters a-z")
)

// Dictionary is an ordered set of unique five-letter words.
type Dictionary struct {
	list  []string
	index map[string]int
	fp    [32]byte
}

// Load builds a Dictionary from list, keeping the first occurrence of each word.
// Every entry must be exactly game.WordLen letters a–z after lowercasing and trimming.
func Load(list []string) (*Dictionary, error) {
	if len(list) == 0 {
		return nil, ErrEmptyDictionary
	}
	d := &Dictionary{
		list:  make([]string, 0, len(list)),
		index: make(map[string]int, len(list)),
	}
	for i, raw := range list {
		w := strings.TrimSpace(strings.ToLower(raw))
		if len(w) != game.WordLen {
			return nil, fmt.Errorf("%w: entry %d %q has %d letters", ErrInvalidWordLength, i, raw, len(w))
		}
		if !game.IsWord(w) {
			return nil, fmt.Errorf("%w: entry %d %q", ErrInvalidWord, i, raw)
		}
		if _, dup := d.index[w]; dup {
			continue
		}
		d.index[w] = len(d.list)
		d.list = append(d.list, w)
	}
	d.fp = Fingerprint(d.list)
	return d, nil
}

// Words returns a copy of the dictionary in load order.
func (d *Dictionary) Words() []string { return slices.Clone(d.list) }

// Len reports the number of words.
func (d *Dictionary) Len() int { return len(d.list) }

// Contains reports whether w is a dictionary word.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.index[strings.ToLower(w)]
	return ok
}

// Index returns the load position of w, or -1.
func (d *Dictionary) Index(w string) int {
	if i, ok := d.index[strings.ToLower(w)]; ok {
		return i
	}
	return -1
}

// Fingerprint returns the hex fingerprint of the whole dictionary.
func (d *Dictionary) Fingerprint() string { return hex.EncodeToString(d.fp[:]) }

// Fingerprint hashes a word set independently of its order.
// Duplicates count, so callers should pass sets.
func Fingerprint(list []string) [32]byte {
	sorted := slices.Clone(list)
	slices.Sort(sorted)

	h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes
	for _, w := range sorted {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
