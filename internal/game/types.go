// internal/game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - State: coarse lifecycle of a game (in_progress/won/lost).
//   - Observer: change-notification callback.
//   - Game: state for a single in-progress or finished game.
//   - Sentinel errors returned by the engine.

package game

import "errors"

// DefaultLives is the number of wrong guesses allowed when the caller has no preference.
const DefaultLives = 6

// Placeholder marks an unrevealed letter in Progress().
const Placeholder = '?'

// State represents where a game is in its lifecycle.
// Won and Lost are terminal: no transition leaves them.
type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateLost       State = "lost"
)

// Observer is invoked after every accepted guess. It carries no payload;
// observers read what they need through the Game query methods.
type Observer func()

var (
	ErrInvalidConfiguration = errors.New("game: life budget must be positive")
	ErrInvalidWord          = errors.New("game: word must be non-empty and letters only")
	ErrGameAlreadyFinished  = errors.New("game: already finished")
	ErrInvalidInput         = errors.New("game: guess must be a single letter")
	ErrGameStillInProgress  = errors.New("game: still in progress")
	ErrReentrantGuess       = errors.New("game: guess submitted from an observer")
)

// Game holds the state of a single Hangman game.
// It is not safe for concurrent use; callers sharing a Game serialize access.
type Game struct {
	secret    []byte            // the word to find (always lowercase)
	revealed  []byte            // same length as secret, Placeholder where unknown
	lives     int               // wrong guesses still allowed
	guessed   map[byte]struct{} // letters already proposed
	remaining map[byte]struct{} // a–z minus guessed
	finished  bool
	won       bool

	observers []subscription
	nextSubID int
	notifying bool // set while observers run, guards against re-entry
}

type subscription struct {
	id int
	fn Observer
}
