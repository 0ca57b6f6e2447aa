package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	g, err := game.New("chat", 3)
	require.NoError(t, err)
	s := NewSession(g)
	require.Len(t, s.ID, 16)

	require.NoError(t, st.Save(ctx, s))
	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, st.Delete(ctx, s.ID))
	_, err = st.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, st.Delete(ctx, s.ID), ErrNotFound)
}

func TestSession_DoSerializesGuesses(t *testing.T) {
	g, err := game.New("abcdefghijklmnopqrstuvwxyz", 1)
	require.NoError(t, err)
	s := NewSession(g)

	var wg sync.WaitGroup
	for c := 'a'; c <= 'z'; c++ {
		wg.Add(1)
		go func(c rune) {
			defer wg.Done()
			_ = s.Do(func(g *game.Game) error { return g.Guess(c) })
		}(c)
	}
	wg.Wait()

	_ = s.Do(func(g *game.Game) error {
		assert.True(t, g.Won())
		assert.Len(t, g.Guessed(), 26)
		assert.Empty(t, g.Remaining())
		return nil
	})
}
