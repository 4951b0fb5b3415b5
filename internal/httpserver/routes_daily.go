// internal/httpserver/routes_daily.go
//
// "Daily" mode: everyone who starts a daily game on the same UTC date, with
// the same word length, gets the same target. Nothing is persisted; the
// target is derived from the date and DAILY_SALT each time.
//   - POST /daily/new → start a game on today's word (same response as /game/new)

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordl/internal/daily"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleNewDaily)
	})
}

func (s *Server) handleNewDaily(w http.ResponseWriter, r *http.Request) {
	req, ok := s.newGameRequest(w, r)
	if !ok {
		return
	}
	src := daily.NewSource(s.now(), s.opts.DailySalt)
	target, err := s.opts.Selector.WordFrom(req.Length, src)
	if err != nil {
		s.startFailed(w, req.Length, err)
		return
	}
	s.startGame(w, r, target, req.Guesses, "daily", src.Date())
}
