package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
)

// Flags keep their Changed state across Execute calls, so the default
// case must run before --lives is ever set.
func TestPlayCmd_Lives(t *testing.T) {
	t.Setenv("DEFAULT_LIVES", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader("c\na\nt\n"))
	rootCmd.SetArgs([]string{"play", "--word", "cat"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Lives: 6")
	assert.Contains(t, out.String(), "You won!")

	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs([]string{"play", "--word", "cat", "--lives", "0"})
	assert.ErrorIs(t, rootCmd.Execute(), game.ErrInvalidConfiguration)
}
