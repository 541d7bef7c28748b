package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

// t.Setenv forbids t.Parallel, so these tests run serially.

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "SAMPLE_THRESHOLD", "SESSION_TTL", "OPENING_SIZE", "DICT_FILE"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	require.Equal(t, "5175", cfg.Port)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, 50, cfg.OpeningSize)
	require.Empty(t, cfg.DictFile)
	require.Equal(t, solver.DefaultConfig().SampleThreshold, cfg.Solver.SampleThreshold)
	require.Equal(t, solver.DefaultConfig().AnswerPoolLimit, cfg.Solver.AnswerPoolLimit)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SOLVER_DB", "")
	t.Setenv("SAMPLE_THRESHOLD", "0")
	t.Setenv("SAMPLE_SEED", "77")
	t.Setenv("SCORE_WORKERS", "3")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("OPENING_SIZE", "not-a-number")

	cfg := Load()
	require.Equal(t, "9000", cfg.Port)
	require.Empty(t, cfg.DBPath, "explicitly empty SOLVER_DB disables SQLite")
	require.Zero(t, cfg.Solver.SampleThreshold)
	require.Equal(t, int64(77), cfg.Solver.Seed)
	require.Equal(t, 3, cfg.Solver.Workers)
	require.Equal(t, 90*time.Minute, cfg.SessionTTL)
	require.Equal(t, 50, cfg.OpeningSize, "invalid numbers fall back to the default")
}
