package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/origin/internal/app"
)

func (c *CLI) newRebaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebase REFSPEC",
		Short: "Switch to a different branch or commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, _ := cmd.Flags().GetString("custom-origin-url")
			description, _ := cmd.Flags().GetString("custom-origin-description")
			changed, err := c.app.Rebase(c.originPath(cmd), args[0], app.RebaseOptions{
				CustomURL:         url,
				CustomDescription: description,
			})
			return report(cmd, changed, err)
		},
	}
	cmd.Flags().String("custom-origin-url", "", "Where the pinned commit came from")
	cmd.Flags().String("custom-origin-description", "", "Human readable name for the custom origin")
	return cmd
}

func (c *CLI) newPinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin CHECKSUM",
		Short: "Pin the deployment to a commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("version-label")
			changed, err := c.app.Pin(c.originPath(cmd), args[0], version)
			return report(cmd, changed, err)
		},
	}
	cmd.Flags().String("version-label", "", "Version recorded next to the pinned commit")
	return cmd
}

func (c *CLI) newUnpinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpin",
		Short: "Follow the refspec again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			changed, err := c.app.Unpin(c.originPath(cmd))
			return report(cmd, changed, err)
		},
	}
}
