package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newOverrideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "override",
		Short: "Manage base package overrides",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "remove PACKAGE...",
		Short: "Remove packages from the base",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := c.app.OverrideRemove(c.originPath(cmd), args)
			return report(cmd, changed, err)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "replace SHA256:NEVRA...",
		Short: "Replace base packages with local packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := c.app.OverrideReplace(c.originPath(cmd), args)
			return report(cmd, changed, err)
		},
	})

	reset := &cobra.Command{
		Use:   "reset [PACKAGE...]",
		Short: "Drop overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			if all {
				changed, err := c.app.OverrideResetAll(c.originPath(cmd))
				return report(cmd, changed, err)
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			changed, err := c.app.OverrideReset(c.originPath(cmd), args)
			return report(cmd, changed, err)
		},
	}
	reset.Flags().Bool("all", false, "Drop every override")
	cmd.AddCommand(reset)

	return cmd
}
