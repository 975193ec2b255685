package commands

import (
	"github.com/bendavis78/corne-case/internal/build"
	"github.com/spf13/cobra"
)

func generateCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Build, check and export every part (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			return runGenerate(e)
		},
	}
}

func runGenerate(e env) error {
	e.log.Info().Int("cols", e.cfg.Cols).Str("out", e.opts.Out).Msg("generating")
	_, err := build.Generate(e.cfg, e.opts)
	return err
}
