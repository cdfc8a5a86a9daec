package cli

import (
	"fmt"
	"runtime"

	"github.com/scottkirkwood/posy/internal/logging"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// Root returns the posy command with every subcommand attached.
func Root() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "posy",
		Short:         "Procedural flower posters",
		Long:          `Grow a handful of Bézier-stemmed flowers from the bottom of a canvas and fade the ones at the back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "trace, debug, info, warn, error or none")
	root.AddCommand(Render(), View(), Watch(), Gallery(), VersionCmd())
	return root
}

func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "posy version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "posy %s (Go version: %s)\n", Version, runtime.Version())
		},
	}
}
