package cli

import (
	"github.com/scottkirkwood/posy/internal/viewer"
	"github.com/spf13/cobra"
)

func View() *cobra.Command {
	var f posterFlags
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show posters in a window",
		Long: `Show posters in a window. Any key makes a new poster, S saves the one
on show, Q or Escape quits. Resizing makes a new poster once the window settles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, seed, err := f.load(cmd)
			if err != nil {
				return err
			}
			setupLogging(cmd, cfg)
			return viewer.Run(cfg, seed)
		},
	}
	f.register(cmd)
	return cmd
}

func Gallery() *cobra.Command {
	return &cobra.Command{
		Use:   "gallery FILE...",
		Short: "Page through saved posters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return viewer.Gallery(args)
		},
	}
}
