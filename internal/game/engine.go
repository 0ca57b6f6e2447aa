// internal/game/engine.go
//
// Core game engine for a single Hangman game.
// Responsibilities:
//   - Create games from an already chosen word and a life budget.
//   - Validate and apply letter guesses (single a–z letter, case-insensitive).
//   - Reveal matching letters in place, charge a life for misses.
//   - Track state transitions: in_progress → won/lost.
//   - Notify registered observers after every accepted guess.
//
// Notes:
//   - Word selection belongs to the words package; the engine never does I/O.
//   - A repeated letter is accepted as a no-op: no life lost, nothing revealed.
//   - A guess that reveals the last letter wins even when no lives would remain
//     after a miss; the win check always runs before the life check.
package game

import (
	"slices"
	"strings"
)

// New constructs a game for word with the given life budget.
// The word is trimmed and lowercased; it must consist of ASCII letters only.
func New(word string, lives int) (*Game, error) {
	if lives <= 0 {
		return nil, ErrInvalidConfiguration
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || !isAlpha(word) {
		return nil, ErrInvalidWord
	}

	g := &Game{
		secret:    []byte(word),
		revealed:  []byte(strings.Repeat(string(Placeholder), len(word))),
		lives:     lives,
		guessed:   make(map[byte]struct{}),
		remaining: make(map[byte]struct{}, 26),
	}
	for c := byte('a'); c <= 'z'; c++ {
		g.remaining[c] = struct{}{}
	}
	return g, nil
}

// Guess applies a single letter proposal and notifies observers.
//
// Validation rules:
//   - Game must not be finished.
//   - letter must be an ASCII letter, either case.
//   - Must not be called from inside an observer of the same game.
//
// State transitions:
//   - Every position is revealed → finished, won.
//   - Else lives reached zero → finished (loss).
func (g *Game) Guess(letter rune) error {
	if g.notifying {
		return ErrReentrantGuess
	}
	if g.finished {
		return ErrGameAlreadyFinished
	}
	if !isLetter(letter) {
		return ErrInvalidInput
	}
	c := byte(letter) | 0x20 // ASCII lowercase

	if _, seen := g.guessed[c]; !seen {
		g.guessed[c] = struct{}{}
		delete(g.remaining, c)

		hit := false
		for i, s := range g.secret {
			if s == c {
				g.revealed[i] = c
				hit = true
			}
		}
		if !hit && g.lives > 0 {
			g.lives--
		}

		if !slices.Contains(g.revealed, Placeholder) {
			g.finished, g.won = true, true
		} else if g.lives == 0 {
			g.finished = true
		}
	}

	g.notify()
	return nil
}

// Subscribe registers fn to be called after each accepted guess.
// Observers run in registration order. The returned func removes the
// subscription; calling it more than once is harmless.
func (g *Game) Subscribe(fn Observer) (unsubscribe func()) {
	g.nextSubID++
	id := g.nextSubID
	g.observers = append(g.observers, subscription{id: id, fn: fn})
	return func() {
		g.observers = slices.DeleteFunc(g.observers, func(s subscription) bool { return s.id == id })
	}
}

// notify runs observers over a snapshot so they may unsubscribe mid-dispatch.
func (g *Game) notify() {
	subs := slices.Clone(g.observers)
	g.notifying = true
	defer func() { g.notifying = false }()
	for _, s := range subs {
		s.fn()
	}
}

// Finished reports whether the game reached a terminal state.
func (g *Game) Finished() bool { return g.finished }

// Won reports whether the player found the word. Always false while in progress.
func (g *Game) Won() bool { return g.won }

// Lives reports how many wrong guesses are still allowed.
func (g *Game) Lives() int { return g.lives }

// WordLength returns the number of letters in the secret word.
func (g *Game) WordLength() int { return len(g.secret) }

// Progress returns the word with unrevealed letters replaced by Placeholder.
func (g *Game) Progress() string { return string(g.revealed) }

// Solution returns the secret word once the game is over.
func (g *Game) Solution() (string, error) {
	if !g.finished {
		return "", ErrGameStillInProgress
	}
	return string(g.secret), nil
}

// State reports a coarse representation of the current game state.
func (g *Game) State() State {
	switch {
	case g.won:
		return StateWon
	case g.finished:
		return StateLost
	default:
		return StateInProgress
	}
}

// Guessed returns the proposed letters in alphabetical order.
func (g *Game) Guessed() []rune { return sortedLetters(g.guessed) }

// Remaining returns the letters not yet proposed, in alphabetical order.
func (g *Game) Remaining() []rune { return sortedLetters(g.remaining) }

func sortedLetters(set map[byte]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for c := range set {
		out = append(out, rune(c))
	}
	slices.Sort(out)
	return out
}

// isLetter reports whether r is an unaccented ASCII letter.
func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
