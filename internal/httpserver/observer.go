// internal/httpserver/observer.go
//
// Logging observer attached to every game the server creates.
// Each accepted guess logs the new state at debug level; the guess that
// ends the game logs at info level.

package httpserver

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
)

// logObserver reports each state change of g. It runs inside Guess, so it
// only reads from g.
func logObserver(id string, g *game.Game) game.Observer {
	return func() {
		ev := log.Debug()
		if g.Finished() {
			ev = log.Info()
		}
		ev.Str("gameId", id).
			Str("state", string(g.State())).
			Str("progress", g.Progress()).
			Int("lives", g.Lives()).
			Msg("game updated")
	}
}
