package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wordle_backend/internal/app/walletd"
)

func main() {
	zerolog.SetGlobalLevel(logLevel())

	a := walletd.NewApp()
	if err := a.Run(); err != nil {
		log.Fatal().Err(err).Msg("walletd stopped")
	}
}

func logLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
