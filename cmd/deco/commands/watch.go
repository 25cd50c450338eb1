package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [patterns...]",
		Short: "Re-process files as they change, reusing cached answers",
		Long: "Scan the matched files once, then re-process them whenever they are written.\n" +
			"The result cache is enabled unless --no-cache is given.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), args, runOptions(cmd))
		},
	}
}
