// internal/openings/store.go
//
// SQLite persistence for precomputed opening rankings.
// Ranking the full dictionary is the most expensive query the solver runs, and its
// result only depends on the dictionary and scorer settings, so it is computed once
// and stored under the dictionary fingerprint.

package openings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Key identifies a ranking by dictionary fingerprint and the scorer settings that shape it.
func Key(fingerprint string, cfg solver.Config) string {
	return fmt.Sprintf("%s/t%d-s%d-f%d-a%d-seed%d",
		fingerprint, cfg.SampleThreshold, cfg.SampleSize, cfg.FullAnalysisLimit, cfg.AnswerPoolLimit, cfg.Seed)
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Load returns the ranking stored for fingerprint in rank order, or nil if none.
func (s *Store) Load(ctx context.Context, fingerprint string) ([]solver.ScoredWord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, entropy FROM openings WHERE fingerprint=? ORDER BY rank ASC`,
		fingerprint,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []solver.ScoredWord
	for rows.Next() {
		var sw solver.ScoredWord
		if err := rows.Scan(&sw.Word, &sw.Entropy); err != nil {
			return nil, err
		}
		out = append(out, sw)
	}
	return out, rows.Err()
}

// Save replaces the ranking stored for fingerprint.
func (s *Store) Save(ctx context.Context, fingerprint string, ranked []solver.ScoredWord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM openings WHERE fingerprint=?`, fingerprint); err != nil {
		return fmt.Errorf("clear openings: %w", err)
	}
	for i, sw := range ranked {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO openings (fingerprint, rank, word, entropy) VALUES (?,?,?,?)`,
			fingerprint, i, sw.Word, sw.Entropy,
		); err != nil {
			return fmt.Errorf("insert opening %s: %w", sw.Word, err)
		}
	}
	return tx.Commit()
}

// LoadOrCompute returns the stored ranking for fingerprint, computing and saving it when missing.
// computed reports whether compute ran.
func (s *Store) LoadOrCompute(ctx context.Context, fingerprint string, compute func() []solver.ScoredWord) (ranked []solver.ScoredWord, computed bool, err error) {
	ranked, err = s.Load(ctx, fingerprint)
	if err != nil {
		return nil, false, err
	}
	if len(ranked) > 0 {
		return ranked, false, nil
	}
	ranked = compute()
	if err := s.Save(ctx, fingerprint, ranked); err != nil {
		return nil, true, err
	}
	return ranked, true, nil
}
