// internal/httpserver/routes_daily.go
//
// Daily mode: every session started on the same UTC day gets the same
// secret, chosen by daily.Word from the date and DAILY_SALT.
//
//   - POST /daily/new → start a session on today's word.
//   - GET  /daily     → today's date key (never the word).
//
// Play then continues through the regular /game/* commands.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/werdle/internal/daily"
	"github.com/robalobadob/werdle/internal/game"
)

// mountDaily registers the /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"date": daily.DateKey(s.opts.Now())})
		})
		r.Post("/new", func(w http.ResponseWriter, r *http.Request) {
			st, date := s.dailyState()
			s.startSession(w, r, st, date)
		})
	})
}

// dailyState returns a fresh game on today's word and today's date key.
func (s *Server) dailyState() (game.State, string) {
	now := s.opts.Now()
	word := daily.Word(s.engine.Dictionary(), now, s.opts.DailySalt)
	// word comes from the engine's own dictionary, so this cannot fail.
	st, _ := s.engine.NewGameWithSecret(word)
	return st, daily.DateKey(now)
}
