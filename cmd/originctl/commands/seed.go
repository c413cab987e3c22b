package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed DESTINATION",
		Short: "Write the origin, minus transient state, for a new deployment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Seed(c.originPath(cmd), args[0])
		},
	}
}
