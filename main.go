// main.go
//
// Entry point for the solver service.
// Startup:
//   - Load .env and environment configuration.
//   - Open and migrate SQLite (unless SOLVER_DB is empty).
//   - Load the dictionary (DICT_FILE, then the words table, then the embedded list).
//   - Prepare the opening ranking, then serve HTTP.

package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/assets"
	"github.com/robalobadob/wordle-solver/internal/config"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/openings"
	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/sqlite"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	ctx := context.Background()

	var db *sql.DB
	if cfg.DBPath != "" {
		var err error
		db, err = sqlite.Open(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
		}
		defer db.Close()
		if err := sqlite.Migrate(db, assets.Migrations()); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	dict, err := loadDictionary(ctx, cfg, db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}

	patterns := game.NewPatternCache(cfg.PatternCacheSize)
	opening, err := loadOpening(ctx, cfg, db, dict)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare opening ranking")
	}

	srv := httpserver.New(httpserver.Options{
		Store:        store.NewMemoryStore(),
		Dictionary:   dict,
		Session:      session.Config{Scorer: cfg.Solver, Patterns: patterns, Opening: opening},
		JWTSecret:    cfg.JWTSecret,
		CookieName:   cfg.CookieName,
		ClientOrigin: cfg.ClientOrigin,
		SecureCookie: cfg.SecureCookie,
		SessionTTL:   cfg.SessionTTL,
	})
	log.Info().Str("port", cfg.Port).Msg("starting wordle-solver")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// loadDictionary picks the first available source: DICT_FILE, the SQLite words
// table, then the embedded list. A configured DICT_FILE is never replaced by
// another source, so an empty or malformed file fails startup. A file-loaded
// dictionary is saved to SQLite.
func loadDictionary(ctx context.Context, cfg config.Config, db *sql.DB) (*words.Dictionary, error) {
	var (
		list   []string
		source string
		err    error
	)
	fromFile := cfg.DictFile != ""
	switch {
	case fromFile:
		source = cfg.DictFile
		list, err = words.ReadFile(cfg.DictFile)
	case db != nil:
		source = "sqlite"
		list, err = words.FromDB(ctx, db)
	}
	if err != nil {
		return nil, fmt.Errorf("read dictionary from %s: %w", source, err)
	}
	if len(list) == 0 && !fromFile {
		source = "embedded"
		if list, err = words.Embedded(); err != nil {
			return nil, err
		}
	}

	dict, err := words.Load(list)
	if err != nil {
		return nil, fmt.Errorf("load dictionary from %s: %w", source, err)
	}
	if db != nil && fromFile {
		if err := words.SaveToDB(ctx, db, dict); err != nil {
			log.Warn().Err(err).Msg("could not save dictionary to sqlite")
		}
	}
	log.Info().Str("source", source).Int("words", dict.Len()).Str("fingerprint", dict.Fingerprint()).Msg("dictionary loaded")
	return dict, nil
}

// loadOpening returns the precomputed ranking for the full dictionary, reading it
// from SQLite when available and computing (and storing) it otherwise.
func loadOpening(ctx context.Context, cfg config.Config, db *sql.DB, dict *words.Dictionary) ([]solver.ScoredWord, error) {
	if cfg.OpeningSize <= 0 {
		return nil, nil
	}
	// The opening is computed once, so it does not go through the shared pattern cache.
	scorer := solver.NewScorer(dict, nil, cfg.Solver)
	compute := func() []solver.ScoredWord {
		start := time.Now()
		r := scorer.ComputeOpening(cfg.OpeningSize)
		log.Info().Dur("took", time.Since(start)).Int("entries", len(r)).Msg("opening computed")
		return r
	}

	var (
		ranked []solver.ScoredWord
		err    error
	)
	if db != nil {
		ranked, _, err = openings.NewStore(db).LoadOrCompute(ctx, openings.Key(dict.Fingerprint(), cfg.Solver), compute)
		if err != nil {
			return nil, err
		}
	} else {
		ranked = compute()
	}
	if len(ranked) > 0 {
		log.Info().Str("word", ranked[0].Word).Float64("entropy", ranked[0].Entropy).Msg("opening ready")
	}
	return ranked, nil
}
