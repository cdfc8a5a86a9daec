package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/scottkirkwood/posy/internal/cli"
)

func main() {
	if err := cli.Root().Execute(); err != nil {
		log.Error().Err(err).Msg("posy failed")
		os.Exit(1)
	}
}
