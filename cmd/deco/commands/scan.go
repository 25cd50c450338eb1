package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/deco/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [patterns...]",
		Short: "Find and transform the files that use decorators",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			out, _ := cmd.Flags().GetString("out")

			_, err := c.app.Scan(cmd.Context(), args, app.ScanOptions{
				RunOptions: runOptions(cmd),
				OutDir:     out,
			})
			return err
		},
	}
	cmd.Flags().StringP("out", "o", "", "Write transformed files below this directory")
	return cmd
}
