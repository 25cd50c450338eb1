package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/deco/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [entry points...]",
		Short: "Bundle entry points with esbuild, transforming decorated files on load",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outdir, _ := cmd.Flags().GetString("outdir")

			_, err := c.app.Build(cmd.Context(), args, app.BuildOptions{
				RunOptions: runOptions(cmd),
				Outdir:     outdir,
			})
			return err
		},
	}
	cmd.Flags().String("outdir", app.DefaultOutdir, "Directory receiving the bundle")
	return cmd
}
