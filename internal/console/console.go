// Package console is the terminal front end of the game: it renders state
// after every guess and reads one letter per line from the player.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/hangman/internal/game"
)

// Play runs g to completion, reading guesses from in and writing to out.
// It returns io.ErrUnexpectedEOF if input ends before the game does.
func Play(g *game.Game, in io.Reader, out io.Writer) error {
	unsubscribe := g.Subscribe(func() { render(out, g) })
	defer unsubscribe()

	render(out, g)
	sc := bufio.NewScanner(in)
	for !g.Finished() {
		fmt.Fprint(out, "Your letter: ")
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			return io.ErrUnexpectedEOF
		}
		line := strings.TrimSpace(sc.Text())
		letter, size := utf8.DecodeRuneInString(line)
		if size == 0 || size != len(line) {
			letter = utf8.RuneError
		}

		if err := g.Guess(letter); err != nil {
			if errors.Is(err, game.ErrInvalidInput) {
				fmt.Fprintln(out, "Please type a single letter (a-z).")
				continue
			}
			return err
		}
	}

	sol, err := g.Solution()
	if err != nil {
		return err
	}
	if g.Won() {
		fmt.Fprintf(out, "You won! The word was %q.\n", sol)
	} else {
		fmt.Fprintf(out, "You lost. The word was %q.\n", sol)
	}
	return nil
}

// render prints the current progress, lives and proposed letters.
func render(out io.Writer, g *game.Game) {
	fmt.Fprintf(out, "\n%s  (%d letters)\n", spaced(g.Progress()), g.WordLength())
	fmt.Fprintf(out, "Lives: %d\n", g.Lives())
	if guessed := g.Guessed(); len(guessed) > 0 {
		fmt.Fprintf(out, "Tried: %s\n", string(guessed))
	}
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
