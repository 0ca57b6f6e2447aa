package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP game server",
	RunE: func(cmd *cobra.Command, args []string) error {
		wl, err := words.Init(cfg.WordsFile)
		if err != nil {
			return err
		}
		srv := httpserver.New(store.NewMemoryStore(), wl, cfg)
		log.Info().Str("port", cfg.Port).Msg("starting hangman server")
		return srv.Start(":" + cfg.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
