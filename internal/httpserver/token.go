// internal/httpserver/token.go
//
// Session tokens.
// A visitor's session ID travels as an HS256 JWT ("sid" claim), either in the
// Authorization header or in a cookie. New sessions also return the token in
// the X-Session-Token header for clients that do not keep cookies.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/session"
)

const tokenHeader = "X-Session-Token"

// signToken creates an HS256 JWT for session id that expires after the session TTL.
func (s *Server) signToken(id string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.opts.SessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.opts.JWTSecret))
	return ss, exp, err
}

// parseToken validates a token and returns its session ID.
func (s *Server) parseToken(tok string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return "", errors.New("invalid token")
	}
	id, _ := claims["sid"].(string)
	if id == "" {
		return "", errors.New("invalid token")
	}
	return id, nil
}

// bearerOrCookie extracts a bearer token from Authorization header or the session cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.opts.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// sessionFor resolves the caller's session, starting a new one when the token is
// missing, invalid, or points at a pruned session.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) (*session.Session, error) {
	ctx := r.Context()
	if tok := s.bearerOrCookie(r); tok != "" {
		if id, err := s.parseToken(tok); err == nil {
			if sess, err := s.opts.Store.Get(ctx, id); err == nil {
				return sess, nil
			}
		}
	}
	return s.newSession(ctx, w)
}

// newSession registers a fresh session and hands its token to the client.
func (s *Server) newSession(ctx context.Context, w http.ResponseWriter) (*session.Session, error) {
	if n, err := s.opts.Store.Prune(ctx, time.Now().Add(-s.opts.SessionTTL)); err == nil && n > 0 {
		log.Debug().Int("pruned", n).Msg("pruned idle sessions")
	}

	id := ulid.Make().String()
	sess := session.Start(s.opts.Dictionary, s.opts.Session)
	if err := s.opts.Store.Save(ctx, id, sess); err != nil {
		return nil, err
	}
	tok, exp, err := s.signToken(id)
	if err != nil {
		return nil, err
	}
	s.setTokenCookie(w, tok, exp)
	w.Header().Set(tokenHeader, tok)
	log.Info().Str("session", id).Msg("session started")
	return sess, nil
}

// setTokenCookie writes the session cookie with appropriate security attributes.
func (s *Server) setTokenCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.opts.SecureCookie {
		sameSite = http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.SecureCookie,
		SameSite: sameSite,
		Expires:  exp,
	})
}
