package openings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/assets"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/sqlite"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	db, err := sqlite.Open(sqlite.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(db, assets.Migrations()))
	return NewStore(db)
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newStore(t)

	got, err := st.Load(ctx, "abc")
	require.NoError(t, err)
	require.Empty(t, got)

	ranked := []solver.ScoredWord{{Word: "crane", Entropy: 2.5}, {Word: "trace", Entropy: 2.25}}
	require.NoError(t, st.Save(ctx, "abc", ranked))
	got, err = st.Load(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, ranked, got)

	// Replacing shrinks the stored ranking and leaves other fingerprints alone.
	require.NoError(t, st.Save(ctx, "def", ranked))
	require.NoError(t, st.Save(ctx, "abc", ranked[:1]))
	got, err = st.Load(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, ranked[:1], got)
	got, err = st.Load(ctx, "def")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestLoadOrComputeRunsOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newStore(t)
	d, err := words.Load([]string{"crane", "trace", "react", "cater", "taper"})
	require.NoError(t, err)
	scorer := solver.NewScorer(d, nil, solver.ExactConfig())

	calls := 0
	compute := func() []solver.ScoredWord {
		calls++
		return scorer.ComputeOpening(3)
	}

	first, computed, err := st.LoadOrCompute(ctx, d.Fingerprint(), compute)
	require.NoError(t, err)
	require.True(t, computed)
	require.Len(t, first, 3)
	require.Equal(t, "crane", first[0].Word)

	second, computed, err := st.LoadOrCompute(ctx, d.Fingerprint(), compute)
	require.NoError(t, err)
	require.False(t, computed)
	require.Equal(t, first, second)
	require.Equal(t, 1, calls)
}

func TestKeyTracksScorerSettings(t *testing.T) {
	t.Parallel()

	a := Key("fp", solver.DefaultConfig())
	require.Equal(t, a, Key("fp", solver.DefaultConfig()))
	require.NotEqual(t, a, Key("fp", solver.ExactConfig()))
	require.NotEqual(t, a, Key("other", solver.DefaultConfig()))

	workers := solver.DefaultConfig()
	workers.Workers = 99
	require.Equal(t, a, Key("fp", workers), "worker count does not change the ranking")
}
