// Package cli has the posy subcommands.
package cli

import (
	"github.com/scottkirkwood/posy"
	"github.com/scottkirkwood/posy/config"
	"github.com/scottkirkwood/posy/internal/logging"
	"github.com/spf13/cobra"
)

// posterFlags are shared by the commands that make posters. Flags that
// were set override the config file.
type posterFlags struct {
	configFile string
	seed       string
	width      float64
	height     float64
	flowers    int
	palette    string
	output     string
	format     string
}

func (f *posterFlags) register(cmd *cobra.Command) {
	defaults := config.Default()
	fl := cmd.Flags()
	fl.StringVarP(&f.configFile, "config", "c", "", "path to a TOML config file")
	fl.StringVar(&f.seed, "seed", "", "hex value for the seed to use")
	fl.Float64Var(&f.width, "width", defaults.Width, "canvas width")
	fl.Float64Var(&f.height, "height", defaults.Height, "canvas height")
	fl.IntVar(&f.flowers, "flowers", 0, "number of flowers, 1 to 4 (random if unset)")
	fl.StringVar(&f.palette, "palette", "", "dark or light (random if unset)")
	fl.StringVarP(&f.output, "out", "o", defaults.Output, "output filename prefix")
	fl.StringVarP(&f.format, "format", "f", defaults.Format, "output format: png, svg, pdf, bmp, tiff or jpg")
}

// setupLogging applies the config's log level unless --log-level was given.
// Call it once per run, before any goroutine logs.
func setupLogging(cmd *cobra.Command, cfg config.Config) {
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		logging.Setup(cfg.LogLevel)
	}
}

// load reads the config file, applies flags and validates the result.
func (f *posterFlags) load(cmd *cobra.Command) (config.Config, posy.Seed, error) {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return cfg, posy.Seed{}, err
	}
	fl := cmd.Flags()
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("width") {
		cfg.Width = f.width
	}
	if fl.Changed("height") {
		cfg.Height = f.height
	}
	if fl.Changed("flowers") {
		n := f.flowers
		cfg.Flowers = &n
	}
	if fl.Changed("palette") {
		cfg.Palette = f.palette
	}
	if fl.Changed("out") {
		cfg.Output = f.output
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if err := cfg.Validate(); err != nil {
		return cfg, posy.Seed{}, err
	}
	seed, err := posy.Init(cfg.Seed)
	return cfg, seed, err
}
