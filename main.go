package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman word-guessing game",
	Long:  `Hangman serves the word-guessing game over HTTP or plays it in the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		zerolog.SetGlobalLevel(cfg.LogLevel)
	},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
