// internal/words/words.go
//
// Provides the word source that feeds the game engine.
//
// Responsibilities:
//   - Load a word list from a file, or fall back to the embedded default.
//   - Pick a random word for a new game.
//
// File format:
//   - One word per line.
//   - The list ends at the first empty line; anything after it is ignored.
//   - Words are normalized to lowercase; lines that are not pure a–z are skipped.
//
// Environment variables (resolved by the config package):
//   WORDS_FILE=/path/to/words.txt

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/assets"
)

// ErrNoWords is returned when a list holds no usable word.
var ErrNoWords = errors.New("words: list is empty")

// List is an immutable set of candidate words.
type List struct {
	words []string
}

// NewList builds a List from already loaded words, normalizing and
// dropping anything that is not a–z.
func NewList(ws []string) *List {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		if w, ok := normalize(w); ok {
			out = append(out, w)
		}
	}
	return &List{words: out}
}

// Init returns the list from path, or the embedded default when path is empty.
func Init(path string) (*List, error) {
	var (
		ws  []string
		err error
	)
	if path != "" {
		ws, err = LoadFile(path)
	} else {
		ws, err = loadEmbedded()
	}
	if err != nil {
		return nil, err
	}
	l := NewList(ws)
	if l.Len() == 0 {
		return nil, ErrNoWords
	}
	log.Info().Str("source", sourceName(path)).Int("words", l.Len()).Msg("word list loaded")
	return l, nil
}

// LoadFile reads a word file; see Load for the format.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// loadEmbedded parses the default list shipped in assets.
func loadEmbedded() ([]string, error) {
	f, err := assets.DefaultWords()
	if err != nil {
		return nil, fmt.Errorf("words: open embedded list: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads one word per line until the first empty line or EOF.
func Load(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			break
		}
		w, ok := normalize(line)
		if !ok {
			log.Debug().Str("line", line).Msg("skipping invalid word")
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// Random returns a cryptographically random word from the list.
func (l *List) Random() (string, error) {
	if len(l.words) == 0 {
		return "", ErrNoWords
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return "", err
	}
	return l.words[n.Int64()], nil
}

// Len returns the number of words in the list.
func (l *List) Len() int { return len(l.words) }

func normalize(s string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(s))
	return w, w != "" && isAlpha(w)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
