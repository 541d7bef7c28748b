package solver

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/words"
)

var fiveWords = []string{"crane", "trace", "react", "cater", "taper"}

func mustDict(t *testing.T, list []string) *words.Dictionary {
	t.Helper()
	d, err := words.Load(list)
	require.NoError(t, err)
	return d
}

func embeddedDict(t *testing.T) *words.Dictionary {
	t.Helper()
	list, err := words.Embedded()
	require.NoError(t, err)
	return mustDict(t, list)
}

func mustPattern(t *testing.T, s string) game.Pattern {
	t.Helper()
	p, err := game.ParsePattern(s)
	require.NoError(t, err)
	return p
}

// entropyByHand recomputes entropy from pattern strings without the Code() index.
func entropyByHand(word string, targets []string) float64 {
	counts := map[string]int{}
	for _, t := range targets {
		counts[game.Encode(word, t).String()]++
	}
	h := 0.0
	for _, c := range counts {
		p := float64(c) / float64(len(targets))
		h -= p * math.Log2(p)
	}
	return h
}

func TestEntropyProperties(t *testing.T) {
	t.Parallel()

	d := embeddedDict(t)
	all := d.Words()
	sets := [][]string{fiveWords, all[:40], all}
	for _, set := range sets {
		for _, w := range all[:25] {
			e := Entropy(w, set, game.Encode)
			require.GreaterOrEqual(t, e, 0.0)
			require.LessOrEqual(t, e, math.Log2(float64(len(set)))+1e-9)
			require.InDelta(t, entropyByHand(w, set), e, 1e-9)
		}
	}
}

func TestEntropyZeroIffSinglePattern(t *testing.T) {
	t.Parallel()

	// Single candidate: every guess gains nothing.
	for _, w := range fiveWords {
		require.Zero(t, Entropy(w, []string{"crane"}, game.Encode))
	}
	// No letters shared with any target: every target gives bbbbb.
	require.Zero(t, Entropy("pious", []string{"crane", "trace", "react"}, game.Encode))
	// Two distinct patterns: strictly positive.
	require.Greater(t, Entropy("crane", []string{"crane", "pilot"}, game.Encode), 0.0)
	require.Zero(t, Entropy("crane", nil, game.Encode))
}

func TestEntropyFiveWordFixture(t *testing.T) {
	t.Parallel()

	// crane splits the five words into five distinct patterns.
	require.InDelta(t, math.Log2(5), Entropy("crane", fiveWords, game.Encode), 1e-12)
	// cater sees yyyyy for both trace and react.
	want := -(3*0.2*math.Log2(0.2) + 0.4*math.Log2(0.4))
	require.InDelta(t, want, Entropy("cater", fiveWords, game.Encode), 1e-12)
}

// satisfies restates the three per-position rules independently of Consistent.
func satisfies(w, guess, fb string) bool {
	for i := 0; i < 5; i++ {
		c := string(guess[i])
		switch fb[i] {
		case 'g':
			if w[i] != guess[i] {
				return false
			}
		case 'y':
			if !strings.Contains(w, c) || w[i] == guess[i] {
				return false
			}
		case 'b':
			if !strings.Contains(w, c) {
				continue
			}
			excused := false
			for j := 0; j < 5; j++ {
				if j != i && guess[j] == guess[i] && (fb[j] == 'g' || fb[j] == 'y') {
					excused = true
				}
			}
			if !excused {
				return false
			}
		}
	}
	return true
}

func TestFilterCraneAllGreen(t *testing.T) {
	t.Parallel()

	in := append([]string(nil), fiveWords...)
	got := Filter(in, "crane", mustPattern(t, "ggggg"))
	require.Equal(t, []string{"crane"}, got)
	require.Equal(t, fiveWords, in, "input must not be mutated")
}

func TestFilterProperties(t *testing.T) {
	t.Parallel()

	all := embeddedDict(t).Words()
	cases := []struct{ guess, fb string }{
		{"crane", "bybbg"},
		{"speed", "ybyyb"},
		{"geese", "bbbgg"},
		{"llama", "yybbb"},
		{"slate", "bbbbb"},
		{"eerie", "ybybg"},
		{"array", "gbbbb"},
	}
	for _, tc := range cases {
		fb := mustPattern(t, tc.fb)
		got := Filter(all, tc.guess, fb)

		// Monotonicity.
		require.LessOrEqual(t, len(got), len(all))
		// Idempotence.
		require.Equal(t, got, Filter(got, tc.guess, fb), tc.guess)

		// Soundness: kept words satisfy every rule, removed words fail one.
		kept := map[string]bool{}
		for _, w := range got {
			kept[w] = true
			require.True(t, satisfies(w, tc.guess, tc.fb), "%s kept for %s/%s", w, tc.guess, tc.fb)
		}
		for _, w := range all {
			if !kept[w] {
				require.False(t, satisfies(w, tc.guess, tc.fb), "%s removed for %s/%s", w, tc.guess, tc.fb)
			}
		}
	}
}

func TestFilterKeepsTheTarget(t *testing.T) {
	t.Parallel()

	all := embeddedDict(t).Words()
	for _, guess := range []string{"crane", "speed", "geese", "eerie", "sassy"} {
		for _, target := range all[:120] {
			got := Filter(all, guess, game.Encode(guess, target))
			require.Contains(t, got, target, "guess %s target %s", guess, target)
		}
	}
}

func TestRankFiveWordScenario(t *testing.T) {
	t.Parallel()

	s := NewScorer(mustDict(t, fiveWords), game.NewPatternCache(0), ExactConfig())
	r := s.Rank(fiveWords)
	require.Len(t, r, 5)

	var order []string
	for _, sw := range r {
		order = append(order, sw.Word)
		require.InDelta(t, entropyByHand(sw.Word, fiveWords), sw.Entropy, 1e-12)
	}
	// Four words tie at log2(5); ties break alphabetically.
	require.Equal(t, []string{"crane", "react", "taper", "trace", "cater"}, order)

	one := s.Rank([]string{"crane"})
	require.Equal(t, []ScoredWord{{Word: "crane", Entropy: 0}}, one)
	require.Nil(t, s.Rank(nil))
}

func TestRankIsSortedAndDeterministic(t *testing.T) {
	t.Parallel()

	d := embeddedDict(t)
	cands := d.Words()[:60]

	cfg := ExactConfig()
	cfg.Workers = 1
	serial := NewScorer(d, nil, cfg).Rank(cands)
	cfg.Workers = 8
	parallel := NewScorer(d, game.NewPatternCache(0), cfg).Rank(cands)
	require.Equal(t, serial, parallel)

	for i := 1; i < len(serial); i++ {
		a, b := serial[i-1], serial[i]
		require.True(t, a.Entropy > b.Entropy || (a.Entropy == b.Entropy && a.Word < b.Word), "%v before %v", a, b)
	}
}

func TestRankAnswerPool(t *testing.T) {
	t.Parallel()

	d := mustDict(t, append([]string{"about", "pilot", "sound"}, fiveWords...))
	cands := []string{"trace", "crane"}

	cfg := ExactConfig()
	r := NewScorer(d, nil, cfg).Rank(cands)
	require.Len(t, r, 2)
	require.ElementsMatch(t, []string{"crane", "trace"}, []string{r[0].Word, r[1].Word})

	cfg.AnswerPoolLimit = 0
	r = NewScorer(d, nil, cfg).Rank(cands)
	require.Len(t, r, d.Len())
}

func TestRankSampling(t *testing.T) {
	t.Parallel()

	d := embeddedDict(t)
	cands := d.Words()[:200]

	cfg := Config{SampleThreshold: 50, SampleSize: 2, FullAnalysisLimit: 0, AnswerPoolLimit: 0, Seed: 42, Workers: 4}
	a := NewScorer(d, nil, cfg).Rank(cands)
	b := NewScorer(d, nil, cfg).Rank(cands)
	require.Equal(t, a, b, "same seed must draw the same sample")
	for _, sw := range a {
		require.LessOrEqual(t, sw.Entropy, 1.0+1e-12, "two sampled targets carry at most one bit")
	}

	// A full-analysis limit covering the set switches sampling off.
	cfg.FullAnalysisLimit = 200
	exact := NewScorer(d, nil, cfg).Rank(cands)
	require.Greater(t, exact[0].Entropy, 1.0)
}

func TestRankCache(t *testing.T) {
	t.Parallel()

	s := NewScorer(mustDict(t, fiveWords), nil, ExactConfig())
	first := s.Rank([]string{"crane", "trace", "react"})
	require.Equal(t, 1, s.CacheLen())
	again := s.Rank([]string{"react", "crane", "trace"})
	require.Equal(t, first, again)
	require.Equal(t, 1, s.CacheLen())

	s.Rank([]string{"crane"})
	require.Equal(t, 2, s.CacheLen())

	s.Clear()
	require.Zero(t, s.CacheLen())
}

func TestOpeningShortcut(t *testing.T) {
	t.Parallel()

	s := NewScorer(mustDict(t, fiveWords), nil, ExactConfig())

	top := s.ComputeOpening(2)
	require.Equal(t, []string{"crane", "react"}, []string{top[0].Word, top[1].Word})
	require.Len(t, s.ComputeOpening(0), 5)

	s.UseOpening([]ScoredWord{{Word: "cater", Entropy: 9}})
	require.Equal(t, []ScoredWord{{Word: "cater", Entropy: 9}}, s.Rank(fiveWords))
	// Subsets still run the general algorithm.
	require.Equal(t, "crane", s.Rank([]string{"crane", "trace"})[0].Word)

	s.UseOpening(nil)
	require.Equal(t, "crane", s.Rank(fiveWords)[0].Word)
}
