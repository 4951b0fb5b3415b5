// internal/httpserver/token.go
//
// Per-game bearer tokens. POST /game/new returns an HS256 JWT whose "gid"
// claim names the game; every /game/{id} route requires a token for that id,
// so knowing a game ID alone is not enough to play or peek at it.

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

var errBadToken = errors.New("invalid token")

// signGameToken creates a token for gameID valid for ttl.
func (s *Server) signGameToken(gameID string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.opts.TokenTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": gameID,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.opts.JWTSecret))
	return ss, exp, err
}

// parseGameToken verifies tokenStr and returns its game ID.
func (s *Server) parseGameToken(tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return "", errBadToken
	}
	gid, _ := claims["gid"].(string)
	if gid == "" {
		return "", errBadToken
	}
	return gid, nil
}

// bearer extracts the token from "Authorization: Bearer <token>".
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// requireGameToken enforces a valid token whose gid matches the {id} URL param.
func (s *Server) requireGameToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearer(r)
		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		gid, err := s.parseGameToken(tokenStr)
		if err != nil || gid != chi.URLParam(r, "id") {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
