// internal/httpserver/routes_solver.go
//
// HTTP routes for the solver. Exposes under /api:
//   - POST /api/reset            → start over with the full dictionary
//   - GET  /api/get_suggestion   → current suggestion + remaining words
//   - POST /api/next_suggestion  → browse to the next alternative for this round
//   - POST /api/submit_feedback  → apply {guess, feedback} and get the next guess
//   - GET  /api/state            → snapshot without changing anything
//
// Feedback uses g (hit), y (present), b (miss), e.g. "gybbg".

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/session"
)

// mountSolver registers all /api routes.
func (s *Server) mountSolver(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/reset", s.handleReset)
		r.Get("/get_suggestion", s.handleGetSuggestion)
		r.Post("/next_suggestion", s.handleNextSuggestion)
		r.Post("/submit_feedback", s.handleSubmitFeedback)
		r.Get("/state", s.handleState)
	})
}

// -----------------------------------------------------------------------------
// /api/reset

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFor(w, r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(sess.Reset())
}

// -----------------------------------------------------------------------------
// /api/get_suggestion

// suggestionRes is returned by /api/get_suggestion.
type suggestionRes struct {
	NextGuess      string   `json:"next_guess"`
	Entropy        float64  `json:"entropy"`
	RemainingCount int      `json:"remaining_count"`
	RemainingWords []string `json:"remaining_words"`
}

func (s *Server) handleGetSuggestion(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFor(w, r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	sw, snap, err := sess.Suggestion()
	if err != nil {
		writeSessionError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(suggestionRes{
		NextGuess:      sw.Word,
		Entropy:        sw.Entropy,
		RemainingCount: snap.RemainingCount,
		RemainingWords: snap.RemainingSample,
	})
}

// -----------------------------------------------------------------------------
// /api/next_suggestion

// nextRes is returned by /api/next_suggestion.
type nextRes struct {
	NextGuess string  `json:"next_guess"`
	Entropy   float64 `json:"entropy"`
}

func (s *Server) handleNextSuggestion(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFor(w, r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	sw, err := sess.NextSuggestion()
	if err != nil {
		writeSessionError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(nextRes{NextGuess: sw.Word, Entropy: sw.Entropy})
}

// -----------------------------------------------------------------------------
// /api/submit_feedback

// feedbackReq is the request payload for /api/submit_feedback.
type feedbackReq struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}

func (s *Server) handleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	sess, err := s.sessionFor(w, r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	snap, err := sess.SubmitFeedback(req.Guess, req.Feedback)
	if err != nil {
		log.Warn().Err(err).Str("guess", req.Guess).Str("feedback", req.Feedback).Msg("rejected feedback")
		writeSessionError(w, err)
		return
	}

	ev := log.Info().Str("guess", req.Guess).Str("feedback", req.Feedback).Int("remaining", snap.RemainingCount)
	if snap.State == session.StateExhausted {
		ev.Msg("no candidates left")
	} else {
		ev.Str("next_guess", snap.NextGuess).Msg("feedback applied")
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// -----------------------------------------------------------------------------
// /api/state

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFor(w, r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(sess.Snapshot())
}
