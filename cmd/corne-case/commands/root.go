// Package commands implements the corne-case command line.
package commands

import (
	"fmt"
	"os"
	"strings"

	corne "github.com/bendavis78/corne-case"
	"github.com/bendavis78/corne-case/helpers/matter"
	"github.com/bendavis78/corne-case/internal/build"
	"github.com/bendavis78/corne-case/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// flags shared by every command.
type flags struct {
	cols       int
	out        string
	cells      int
	configPath string
	logLevel   string
	noPreview  bool
	material   string
}

// env is the state a command runs with, resolved from flags.
type env struct {
	cfg  corne.Config
	opts build.Options
	log  zerolog.Logger
}

// Execute runs the command line and logs any failure.
func Execute() error {
	root := newRoot()
	err := root.Execute()
	if err != nil {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		log.Error().Err(err).Msg("corne-case failed")
	}
	return err
}

func newRoot() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "corne-case",
		Short:         "Generate the printable parts of a split Corne keyboard case",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			return runGenerate(e)
		},
	}
	pf := root.PersistentFlags()
	pf.IntVar(&f.cols, "cols", 6, "number of key columns (5 or 6)")
	pf.StringVar(&f.out, "out", "out", "output directory")
	pf.IntVar(&f.cells, "cells", build.DefaultCells, "mesher resolution along the longest side of a part")
	pf.StringVar(&f.configPath, "config", "", "HCL file overriding layout constants")
	pf.StringVar(&f.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVar(&f.noPreview, "no-preview", false, "skip PNG previews")
	pf.StringVar(&f.material, "compensate-shrink", "", "enlarge holes and scale parts for a filament (PLA, PETG)")

	root.AddCommand(generateCmd(&f), layoutCmd(&f), validateCmd(&f))
	return root
}

// resolve builds the configuration and export options. A --cols flag
// given on the command line wins over the config file, which wins over
// the default.
func (f *flags) resolve(cmd *cobra.Command) (env, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(f.logLevel))
	if err != nil {
		return env{}, fmt.Errorf("--log-level: %w", err)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level).With().Timestamp().Logger()

	var file *config.File
	if f.configPath != "" {
		if file, err = config.Load(f.configPath); err != nil {
			return env{}, err
		}
		log.Debug().Str("path", f.configPath).Msg("loaded overrides")
	}
	cols := file.ColsOr(f.cols)
	if cmd.Flags().Changed("cols") {
		cols = f.cols
	}
	cfg := file.Apply(corne.DefaultConfig(cols))
	if err := cfg.Validate(); err != nil {
		return env{}, err
	}

	opts := build.Options{
		Out:     f.out,
		Cells:   f.cells,
		Preview: !f.noPreview,
		Log:     log,
	}
	if f.material != "" {
		m, ok := matter.Lookup(strings.ToUpper(f.material))
		if !ok {
			return env{}, fmt.Errorf("--compensate-shrink: unknown material %q", f.material)
		}
		opts.Material = &m
	}
	return env{cfg: cfg, opts: opts, log: log}, nil
}
