package commands

import (
	"github.com/bendavis78/corne-case/internal/build"
	"github.com/spf13/cobra"
)

func validateCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Build every part and check the assembly fit without exporting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			set, err := build.Validate(e.cfg, e.log)
			if err != nil {
				return err
			}
			for _, p := range set.All() {
				bb := p.Bounds()
				e.log.Info().Str("part", p.Name).Strs("joints", p.JointNames()).
					Floats64("size", []float64{bb.Size().X, bb.Size().Y, bb.Size().Z}).Msg("ok")
			}
			return nil
		},
	}
}
