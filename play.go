package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		lives := cfg.DefaultLives
		if cmd.Flags().Changed("lives") {
			lives, _ = cmd.Flags().GetInt("lives")
		}
		word, _ := cmd.Flags().GetString("word")
		if word == "" {
			wl, err := words.Init(cfg.WordsFile)
			if err != nil {
				return err
			}
			if word, err = wl.Random(); err != nil {
				return err
			}
		}

		g, err := game.New(word, lives)
		if err != nil {
			return fmt.Errorf("new game: %w", err)
		}
		return console.Play(g, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Int("lives", 0, "wrong guesses allowed (default from DEFAULT_LIVES)")
	playCmd.Flags().String("word", "", "word to guess (default: random from the word list)")
}
