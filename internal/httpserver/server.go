// internal/httpserver/server.go
//
// HTTP server wiring for the wordl backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, request logs).
//   - Public endpoints: "/", "/health", "/metrics", "/words/check".
//   - Game endpoints: POST /game/new, and token-gated GET /game/{id},
//     POST /game/{id}/keys, POST /game/{id}/guess.
//   - Daily endpoint: POST /daily/new (routes_daily.go).
//
// Notes:
//   - Game state lives in a store.Store; each request loads, mutates and saves it
//     under a per-game lock so concurrent key presses apply in order.
//   - The answer is only included in a game view once the game is finished.

package httpserver

import (
	"encoding/json"
	"errors"
	"hash/fnv"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordl/internal/game"
	"github.com/robalobadob/wordl/internal/metrics"
	"github.com/robalobadob/wordl/internal/store"
	"github.com/robalobadob/wordl/internal/words"
)

// Options are the dependencies and settings of a Server.
type Options struct {
	Store        store.Store
	Selector     *words.Selector
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer // served on /metrics when set
	JWTSecret    string
	TokenTTL     time.Duration
	WordLength   int
	MaxGuesses   int
	DailySalt    string
	ClientOrigin string
	Now          func() time.Time
}

// Server bundles router, game store and word selector.
type Server struct {
	r     *chi.Mux
	opts  Options
	locks [64]sync.Mutex
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.WordLength <= 0 {
		opts.WordLength = game.DefaultLength
	}
	if opts.MaxGuesses <= 0 {
		opts.MaxGuesses = game.DefaultGuesses
	}
	opts.MaxGuesses = min(opts.MaxGuesses, game.MaxGuessesLimit)
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	s := &Server{r: chi.NewRouter(), opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordl","endpoints":["/health","/words/check","POST /game/new","POST /daily/new","/game/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	if opts.Gatherer != nil {
		s.r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	s.r.Get("/words/check", s.handleCheckWord)

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireGameToken)
		r.Get("/", s.handleGetGame)
		r.Post("/keys", s.handleKeys)
		r.Post("/guess", s.handleGuess)
	})

	s.mountDaily(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

func (s *Server) now() time.Time { return s.opts.Now() }

// lock serializes requests for one game.
func (s *Server) lock(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &s.locks[h.Sum32()%uint32(len(s.locks))]
	mu.Lock()
	return mu.Unlock
}

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// ------------------------------ WORDS --------------------------------------

type checkWordRes struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
}

func (s *Server) handleCheckWord(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	_ = json.NewEncoder(w).Encode(checkWordRes{Word: word, Valid: s.opts.Selector.IsWord(word)})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new and POST /daily/new.
type newGameReq struct {
	Length  int `json:"length"`
	Guesses int `json:"guesses"`
}
type newGameRes struct {
	GameID    string    `json:"gameId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Player    string    `json:"player"`
	Length    int       `json:"length"`
	Guesses   int       `json:"guesses"`
	Date      string    `json:"date,omitempty"`
}

// decodeNewGame reads an optional newGameReq body and applies defaults.
func (s *Server) decodeNewGame(r *http.Request) (newGameReq, error) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	if req.Length == 0 {
		req.Length = s.opts.WordLength
	}
	if req.Guesses <= 0 {
		req.Guesses = s.opts.MaxGuesses
	}
	return req, nil
}

// newGameRequest decodes and validates a new-game body, writing 400/422 on failure.
func (s *Server) newGameRequest(w http.ResponseWriter, r *http.Request) (newGameReq, bool) {
	req, err := s.decodeNewGame(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return req, false
	}
	if req.Guesses > game.MaxGuessesLimit {
		writeError(w, http.StatusUnprocessableEntity, "invalid_guesses")
		return req, false
	}
	return req, true
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	req, ok := s.newGameRequest(w, r)
	if !ok {
		return
	}
	target, err := s.opts.Selector.RandomWord(req.Length)
	if err != nil {
		s.startFailed(w, req.Length, err)
		return
	}
	s.startGame(w, r, target, req.Guesses, "random", "")
}

// startFailed maps a selection error to a response.
func (s *Server) startFailed(w http.ResponseWriter, length int, err error) {
	if errors.Is(err, words.ErrInvalidLength) {
		writeError(w, http.StatusUnprocessableEntity, "invalid_length")
		return
	}
	log.Error().Err(err).Int("length", length).Msg("draw target")
	writeError(w, http.StatusInternalServerError, "draw_failed")
}

// startGame creates the game for target, saves it, issues its token and
// writes the 201 response.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, target string, guesses int, mode, date string) {
	g, err := game.Start(target, guesses)
	if err != nil {
		log.Error().Err(err).Str("mode", mode).Msg("start game")
		writeError(w, http.StatusInternalServerError, "unplayable_target")
		return
	}
	if err := s.opts.Store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signGameToken(g.ID)
	if err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	if s.opts.Metrics != nil {
		s.opts.Metrics.IncrementGamesStarted(mode)
	}
	log.Info().Str("gameId", g.ID).Str("player", g.Player).Str("mode", mode).Int("length", g.Length).Msg("game started")

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(newGameRes{
		GameID:    g.ID,
		Token:     tok,
		ExpiresAt: exp,
		Player:    g.Player,
		Length:    g.Length,
		Guesses:   g.MaxGuesses,
		Date:      date,
	})
}

// gameView is the client-facing representation of a game.
type gameView struct {
	GameID     string                      `json:"gameId"`
	Player     string                      `json:"player"`
	Length     int                         `json:"length"`
	MaxGuesses int                         `json:"maxGuesses"`
	Remaining  int                         `json:"remaining"`
	State      string                      `json:"state"` // "playing" | "won" | "lost"
	Current    string                      `json:"current"`
	Board      [][]game.Cell               `json:"board"`
	Keyboard   map[string]game.LetterClass `json:"keyboard"`
	Answer     string                      `json:"answer,omitempty"`
	Toasts     []game.Toast                `json:"toasts,omitempty"`
}

func viewOf(g *game.Game, toasts []game.Toast) gameView {
	v := gameView{
		GameID:     g.ID,
		Player:     g.Player,
		Length:     g.Length,
		MaxGuesses: g.MaxGuesses,
		Remaining:  g.Remaining(),
		State:      g.State(),
		Current:    g.Current,
		Board:      g.Board(),
		Keyboard:   g.Keyboard(),
		Toasts:     toasts,
	}
	if g.Finished() {
		v.Answer = g.Target
	}
	return v
}

// loadGame fetches the {id} game, writing 404/500 on failure.
func (s *Server) loadGame(w http.ResponseWriter, r *http.Request) (*game.Game, bool) {
	g, err := s.opts.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Msg("load game")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return nil, false
	}
	return g, true
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadGame(w, r)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(g, nil))
}

type keysReq struct {
	Keys []string `json:"keys"`
}

// handleKeys applies key presses in order, exactly as a keyboard would.
func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	var req keysReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Keys == nil {
		req.Keys = []string{}
	}
	s.applyKeys(w, r, func(*game.Game) []string { return req.Keys })
}

type guessReq struct {
	Word string `json:"word"`
}

// handleGuess replaces the guess in progress with word and submits it.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	word := strings.TrimSpace(req.Word)
	s.applyKeys(w, r, func(g *game.Game) []string {
		if len([]rune(word)) != g.Length {
			return nil
		}
		keys := make([]string, 0, len(g.Current)+len(word)+1)
		for range g.Current {
			keys = append(keys, "Backspace")
		}
		for _, c := range word {
			keys = append(keys, string(c))
		}
		return append(keys, "Enter")
	})
}

// applyKeys loads the game under its lock, presses the keys chosen by
// keysFor, records metrics, saves and responds with the new view. A nil
// key list means the request itself was malformed.
func (s *Server) applyKeys(w http.ResponseWriter, r *http.Request, keysFor func(*game.Game) []string) {
	defer s.lock(chi.URLParam(r, "id"))()

	g, ok := s.loadGame(w, r)
	if !ok {
		return
	}
	finishedBefore := g.Finished()
	keys := keysFor(g)
	if keys == nil {
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	}

	toasts := []game.Toast{}
	for _, k := range keys {
		wasFinished := g.Finished()
		accepted := len(g.Words)
		t := g.Press(k, s.opts.Selector)
		if t != nil {
			toasts = append(toasts, *t)
		}
		if k != "Enter" || wasFinished || s.opts.Metrics == nil {
			continue
		}
		if len(g.Words) > accepted {
			s.opts.Metrics.IncrementGuessesAccepted()
		} else {
			s.opts.Metrics.IncrementGuessesRejected()
		}
		if g.Finished() {
			s.opts.Metrics.IncrementGamesFinished(g.State())
		}
	}

	if err := s.opts.Store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	if g.Finished() && !finishedBefore {
		log.Info().Str("gameId", g.ID).Str("player", g.Player).Str("state", g.State()).Int("guesses", len(g.Words)).Msg("game finished")
	}
	_ = json.NewEncoder(w).Encode(viewOf(g, toasts))
}
