package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/assets"
)

func TestLoad_StopsAtEmptyLine(t *testing.T) {
	ws, err := Load(strings.NewReader("Chat\n  pendu \nch4t\nmaison\n\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"chat", "pendu", "maison"}, ws)
}

func TestLoad_WithoutTerminator(t *testing.T) {
	ws, err := Load(strings.NewReader("alpha\nbeta"))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, ws)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("kayak\nyacht\n\n"), 0o644))

	l, err := Init(path)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.Contains(t, l.words, "kayak")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestInit_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("\nword\n"), 0o644))

	_, err := Init(path)
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestInit_Embedded(t *testing.T) {
	l, err := Init("")
	require.NoError(t, err)
	assert.Greater(t, l.Len(), 0)
	assert.Contains(t, l.words, "hangman")

	// The embedded list goes through the same parser as a word file.
	f, err := assets.DefaultWords()
	require.NoError(t, err)
	defer f.Close()
	ws, err := Load(f)
	require.NoError(t, err)
	assert.Equal(t, ws, l.words)
}

func TestRandom(t *testing.T) {
	l := NewList([]string{"Solo", "bad word"})
	require.Equal(t, 1, l.Len())

	for i := 0; i < 5; i++ {
		w, err := l.Random()
		require.NoError(t, err)
		assert.Equal(t, "solo", w)
	}

	_, err := NewList(nil).Random()
	assert.ErrorIs(t, err, ErrNoWords)
}
