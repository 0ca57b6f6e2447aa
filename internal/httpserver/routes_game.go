// internal/httpserver/routes_game.go
//
// HTTP routes for playing a game:
//   - POST   /game/new           → start a game, returns its ID and token
//   - GET    /game/{id}          → current view
//   - POST   /game/{id}/guess    → submit one letter
//   - GET    /game/{id}/solution → the word, once the game is over
//   - DELETE /game/{id}          → abandon a game
//
// All /game/{id} routes require the game's bearer token.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
)

func (s *Server) mountGame(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireGameToken)
		r.Get("/", s.handleView)
		r.Post("/guess", s.handleGuess)
		r.Get("/solution", s.handleSolution)
		r.Delete("/", s.handleDelete)
	})
}

// gameView is the JSON rendering of a game as seen by the player.
type gameView struct {
	Progress  string     `json:"progress"`
	Lives     int        `json:"lives"`
	Length    int        `json:"length"`
	Guessed   string     `json:"guessed"`
	Remaining string     `json:"remaining"`
	State     game.State `json:"state"`
	Finished  bool       `json:"finished"`
	Won       bool       `json:"won"`
	Solution  string     `json:"solution,omitempty"` // only once finished
}

func viewOf(g *game.Game) gameView {
	v := gameView{
		Progress:  g.Progress(),
		Lives:     g.Lives(),
		Length:    g.WordLength(),
		Guessed:   string(g.Guessed()),
		Remaining: string(g.Remaining()),
		State:     g.State(),
		Finished:  g.Finished(),
		Won:       g.Won(),
	}
	if sol, err := g.Solution(); err == nil {
		v.Solution = sol
	}
	return v
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Lives *int   `json:"lives"` // optional; absent → configured default
	Word  string `json:"word"`  // optional fixed word (testing)
}
type newGameRes struct {
	GameID string   `json:"gameId"`
	Token  string   `json:"token"`
	View   gameView `json:"view"`
}

// handleNewGame creates a game, subscribes the logging observer, stores the
// session and returns its token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	lives := s.cfg.DefaultLives
	if req.Lives != nil {
		lives = *req.Lives
	}
	word := req.Word
	if word == "" {
		var err error
		if word, err = s.words.Random(); err != nil {
			log.Error().Err(err).Msg("pick word")
			writeError(w, http.StatusInternalServerError, "no_words")
			return
		}
	}

	g, err := game.New(word, lives)
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code)
		return
	}
	sess := store.NewSession(g)
	g.Subscribe(logObserver(sess.ID, g))

	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, _, err := s.tokens.sign(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}

	log.Info().Str("gameId", sess.ID).Int("length", g.WordLength()).Int("lives", lives).Msg("game started")
	writeJSON(w, http.StatusCreated, newGameRes{GameID: sess.ID, Token: tok, View: viewOf(g)})
}

// guessReq is the payload for POST /game/{id}/guess.
type guessReq struct {
	Letter string `json:"letter"`
}

// handleGuess applies one letter under the session lock and returns the new view.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	letter, size := utf8.DecodeRuneInString(req.Letter)
	if size == 0 || size != len(req.Letter) {
		letter = utf8.RuneError // not exactly one character
	}

	var v gameView
	err := sess.Do(func(g *game.Game) error {
		if err := g.Guess(letter); err != nil {
			return err
		}
		v = viewOf(g)
		return nil
	})
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var v gameView
	_ = sess.Do(func(g *game.Game) error {
		v = viewOf(g)
		return nil
	})
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleSolution(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var sol string
	err := sess.Do(func(g *game.Game) (err error) {
		sol, err = g.Solution()
		return err
	})
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"solution": sol})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), gameID(r)); err != nil {
		status, code := statusFor(err)
		writeError(w, status, code)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// session loads the game named by the token, writing a 404 if it is gone.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	sess, err := s.store.Get(r.Context(), gameID(r))
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code)
		return nil, false
	}
	return sess, true
}

// gameID returns the game ID authorized by requireGameToken.
func gameID(r *http.Request) string {
	id, _ := r.Context().Value(ctxGameKey{}).(string)
	return id
}
