package commands

import (
	"github.com/bendavis78/corne-case/internal/build"
	"github.com/spf13/cobra"
)

func layoutCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print key and screw placements and write the layout drawing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			if err := build.WritePlacements(cmd.OutOrStdout(), e.cfg); err != nil {
				return err
			}
			return build.Layout(e.cfg, e.opts)
		},
	}
}
