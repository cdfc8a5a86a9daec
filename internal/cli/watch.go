package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/scottkirkwood/posy/internal/render"
	"github.com/scottkirkwood/posy/internal/watch"
	"github.com/spf13/cobra"
)

func Watch() *cobra.Command {
	var f posterFlags
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Render a poster every time the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.configFile == "" {
				return errors.New("watch needs --config")
			}
			cfg, seed, err := f.load(cmd)
			if err != nil {
				return err
			}
			setupLogging(cmd, cfg)
			if _, _, err := render.Poster(cfg, seed); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			log.Info().Str("file", f.configFile).Msg("watching")
			return watch.File(ctx, f.configFile, time.Duration(cfg.Debounce), func() {
				cfg, seed, err := f.load(cmd)
				if err != nil {
					log.Error().Err(err).Msg("config rejected")
					return
				}
				if _, _, err := render.Poster(cfg, seed); err != nil {
					log.Error().Err(err).Msg("render failed")
				}
			})
		},
	}
	f.register(cmd)
	return cmd
}
