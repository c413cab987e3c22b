package commands

import (
	"strconv"

	"github.com/spf13/cobra"
)

func (c *CLI) newCliwrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "cliwrap true|false",
		Short:     "Enable or disable CLI wrapping",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"true", "false"},
		RunE: func(cmd *cobra.Command, args []string) error {
			enable, err := strconv.ParseBool(args[0])
			if err != nil {
				return err
			}
			changed, err := c.app.Cliwrap(c.originPath(cmd), enable)
			return report(cmd, changed, err)
		},
	}
}
