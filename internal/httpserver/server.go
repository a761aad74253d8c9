// internal/httpserver/server.go
//
// HTTP presentation layer for the game engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     access logging).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Session creation: POST /game/new, POST /daily/new.
//   - Game commands (require a session token): letter, delete, submit,
//     reset, key; GET /game returns the current view.
//
// Notes:
//   - The engine is pure; this layer owns the session map and threads each
//     session's State through the engine under the store's lock.
//   - Rejected commands answer 422 with the unchanged game view so clients
//     can keep rendering.
//   - The secret word is only disclosed once the game is over.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/werdle/internal/game"
	"github.com/robalobadob/werdle/internal/store"
)

// Options carries the server's tunables.
type Options struct {
	JWTSecret        string
	SessionTTL       time.Duration
	ClientOrigin     string
	DailySalt        string
	AllowFixedSecret bool
	Secure           bool             // mark cookies Secure/SameSite=None
	Now              func() time.Time // defaults to time.Now
}

// Server bundles router, engine and session store.
type Server struct {
	r      *chi.Mux
	engine *game.Engine
	store  store.Store
	opts   Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(engine *game.Engine, st store.Store, opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	s := &Server{r: chi.NewRouter(), engine: engine, store: st, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(hlog.AccessHandler(accessLog))
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"werdle","endpoints":["/health","POST /game/new","POST /daily/new","GET /game","POST /game/{letter,delete,submit,reset,key}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"words":   s.engine.Dictionary().Len(),
			"scoring": s.engine.Scoring().String(),
		})
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.mountDaily(s.r)

	s.r.Group(func(r chi.Router) {
		r.Use(s.requireSession())
		r.Get("/game", s.handleView)
		r.Post("/game/letter", s.handleLetter)
		r.Post("/game/delete", s.command(s.engine.RemoveLetter))
		r.Post("/game/submit", s.command(s.engine.SubmitGuess))
		r.Post("/game/reset", s.command(func(game.State) (game.State, game.Result) { return s.engine.Reset() }))
		r.Post("/game/key", s.handleKey)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Handler exposes the router (useful for tests and http.Server).
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("req_id", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}

// ------------------------------ views --------------------------------------

// gameView is what clients render. The secret appears only once the game
// is over.
type gameView struct {
	Guesses    []string                     `json:"guesses"`
	Pending    string                       `json:"pending"`
	Over       bool                         `json:"over"`
	Won        bool                         `json:"won"`
	Phase      game.Phase                   `json:"phase"`
	Attempts   int                          `json:"attempts"`
	MaxGuesses int                          `json:"maxGuesses"`
	Board      []game.Row                   `json:"board"`
	Keyboard   map[string]game.LetterStatus `json:"keyboard"`
	Secret     string                       `json:"secret,omitempty"`
}

func (s *Server) view(st game.State) gameView {
	keys := s.engine.Keyboard(st)
	kb := make(map[string]game.LetterStatus, len(keys))
	for _, k := range keys {
		kb[k.Letter] = k.Status
	}
	guesses := st.Guesses
	if guesses == nil {
		guesses = []string{}
	}
	v := gameView{
		Guesses:    guesses,
		Pending:    st.Pending,
		Over:       st.Over,
		Won:        st.Won,
		Phase:      st.Phase(),
		Attempts:   st.Attempts(),
		MaxGuesses: game.MaxGuesses,
		Board:      s.engine.Board(st),
		Keyboard:   kb,
	}
	if st.Over {
		v.Secret = st.Secret
	}
	return v
}

// commandRes is returned by every game command.
type commandRes struct {
	Outcome game.Outcome `json:"outcome"`
	Tag     string       `json:"tag"`
	Message string       `json:"message,omitempty"`
	Game    gameView     `json:"game"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode   string `json:"mode"`   // "random" (default) | "daily"
	Secret string `json:"secret"` // fixed secret, honoured only if allowed
}
type newGameRes struct {
	GameID string   `json:"gameId"`
	Token  string   `json:"token"`
	Date   string   `json:"date,omitempty"`
	Game   gameView `json:"game"`
}

// handleNewGame starts a session and hands back its token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// An empty body starts a random game.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	var (
		st   game.State
		date string
	)
	switch {
	case req.Mode == "daily":
		st, date = s.dailyState()
	case req.Mode != "" && req.Mode != "random":
		http.Error(w, `{"error":"unknown_mode"}`, http.StatusBadRequest)
		return
	case req.Secret != "":
		if !s.opts.AllowFixedSecret {
			http.Error(w, `{"error":"fixed_secret_disabled"}`, http.StatusForbidden)
			return
		}
		var err error
		if st, err = s.engine.NewGameWithSecret(req.Secret); err != nil {
			http.Error(w, `{"error":"not_in_dictionary"}`, http.StatusBadRequest)
			return
		}
	default:
		st = s.engine.NewGame()
	}
	s.startSession(w, r, st, date)
}

// startSession stores st under a new session and writes the token response.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, st game.State, date string) {
	id, err := s.store.Create(r.Context(), st)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("create session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	tok, exp, err := s.signSession(id)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign session")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	s.setSessionCookie(w, tok, exp)
	hlog.FromRequest(r).Debug().Str("session", id).Str("date", date).Msg("game started")
	writeJSON(w, http.StatusOK, newGameRes{GameID: id, Token: tok, Date: date, Game: s.view(st)})
}

// handleView returns the session's current game.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Get(r.Context(), sessionID(r))
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.view(st))
}

type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	letter := []rune(req.Letter)
	if len(letter) != 1 {
		letter = []rune{0} // rejected by the engine as invalid_letter
	}
	s.command(func(st game.State) (game.State, game.Result) {
		return s.engine.AddLetter(st, letter[0])
	})(w, r)
}

type keyReq struct {
	Key string `json:"key"`
}

// handleKey dispatches an on-screen keyboard key.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	cmd, ok := game.CommandForKey(req.Key)
	if !ok {
		http.Error(w, `{"error":"unknown_key"}`, http.StatusBadRequest)
		return
	}
	s.command(func(st game.State) (game.State, game.Result) {
		return s.engine.Apply(st, cmd)
	})(w, r)
}

// command runs fn against the session's state under the store lock and
// writes the outcome.
func (s *Server) command(fn func(game.State) (game.State, game.Result)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)
		var res game.Result
		st, err := s.store.Update(r.Context(), id, func(cur game.State) (game.State, error) {
			next, out := fn(cur)
			res = out
			return next, nil
		})
		if err != nil {
			s.storeError(w, r, err)
			return
		}

		status := http.StatusOK
		if !res.OK() {
			status = http.StatusUnprocessableEntity
		}
		if res.Outcome == game.OutcomeWon || res.Outcome == game.OutcomeLost {
			hlog.FromRequest(r).Info().
				Str("session", id).
				Str("outcome", string(res.Outcome)).
				Int("guesses", st.Attempts()).
				Msg("game finished")
		}
		writeJSON(w, status, commandRes{
			Outcome: res.Outcome,
			Tag:     res.Tag(),
			Message: res.Message,
			Game:    s.view(st),
		})
	}
}

func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
		return
	}
	hlog.FromRequest(r).Error().Err(err).Msg("session store")
	http.Error(w, `{"error":"store_failed"}`, http.StatusInternalServerError)
}
