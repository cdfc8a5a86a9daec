package cli

import (
	"fmt"

	"github.com/scottkirkwood/posy/internal/render"
	"github.com/spf13/cobra"
)

func Render() *cobra.Command {
	var f posterFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write one poster to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, seed, err := f.load(cmd)
			if err != nil {
				return err
			}
			setupLogging(cmd, cfg)
			fname, _, err := render.Poster(cfg, seed)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fname)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
