// internal/config/config.go
//
// Environment configuration for the solver service.
// main loads .env (godotenv) first, so values may come from either source.
//
// Environment variables:
//   PORT, LOG_LEVEL, SOLVER_DB, DICT_FILE, CLIENT_ORIGIN, JWT_SECRET, COOKIE_NAME,
//   SESSION_TTL, SAMPLE_THRESHOLD, SAMPLE_SIZE, FULL_ANALYSIS_LIMIT,
//   ANSWER_POOL_LIMIT, SAMPLE_SEED, SCORE_WORKERS, OPENING_SIZE, PATTERN_CACHE_SIZE, NODE_ENV

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Config is the full service configuration.
type Config struct {
	Port         string
	LogLevel     string
	DBPath       string // empty disables SQLite
	DictFile     string // optional .txt or .csv word list
	ClientOrigin string
	JWTSecret    string
	CookieName   string
	SecureCookie bool // NODE_ENV=production
	SessionTTL   time.Duration

	Solver           solver.Config
	OpeningSize      int // 0 disables the precomputed opening
	PatternCacheSize int // <= 0 means unbounded
}

// Load reads the configuration from the environment, applying defaults.
func Load() Config {
	s := solver.DefaultConfig()
	s.SampleThreshold = envInt("SAMPLE_THRESHOLD", s.SampleThreshold)
	s.SampleSize = envInt("SAMPLE_SIZE", s.SampleSize)
	s.FullAnalysisLimit = envInt("FULL_ANALYSIS_LIMIT", s.FullAnalysisLimit)
	s.AnswerPoolLimit = envInt("ANSWER_POOL_LIMIT", s.AnswerPoolLimit)
	s.Seed = envInt64("SAMPLE_SEED", s.Seed)
	s.Workers = envInt("SCORE_WORKERS", s.Workers)

	return Config{
		Port:             getEnv("PORT", "5175"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DBPath:           envOptional("SOLVER_DB", "./data/solver.db"),
		DictFile:         os.Getenv("DICT_FILE"),
		ClientOrigin:     getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		JWTSecret:        getEnv("JWT_SECRET", "dev_secret_change_me"),
		CookieName:       getEnv("COOKIE_NAME", "solver_token"),
		SecureCookie:     os.Getenv("NODE_ENV") == "production",
		SessionTTL:       envDuration("SESSION_TTL", 24*time.Hour),
		Solver:           s,
		OpeningSize:      envInt("OPENING_SIZE", 50),
		PatternCacheSize: envInt("PATTERN_CACHE_SIZE", 1<<20),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envOptional is like getEnv, but an explicitly empty value stays empty.
func envOptional(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envInt64(k string, def int64) int64 {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
