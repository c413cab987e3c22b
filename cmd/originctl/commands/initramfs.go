package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/origin/internal/app"
)

func (c *CLI) newInitramfsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initramfs",
		Short: "Enable or disable client-side initramfs regeneration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enable, _ := cmd.Flags().GetBool("enable")
			disable, _ := cmd.Flags().GetBool("disable")
			if enable == disable {
				return cmd.Help()
			}
			args, _ := cmd.Flags().GetStringArray("arg")
			changed, err := c.app.Initramfs(c.originPath(cmd), enable, args)
			return report(cmd, changed, err)
		},
	}
	cmd.Flags().Bool("enable", false, "Regenerate the initramfs")
	cmd.Flags().Bool("disable", false, "Use the initramfs from the base")
	cmd.Flags().StringArray("arg", nil, "Extra argument for the initramfs generator (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("enable", "disable")
	return cmd
}

func (c *CLI) newInitramfsEtcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initramfs-etc",
		Short: "Add or remove /etc files in the initramfs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			track, _ := cmd.Flags().GetStringArray("track")
			untrack, _ := cmd.Flags().GetStringArray("untrack")
			untrackAll, _ := cmd.Flags().GetBool("untrack-all")
			if len(track) == 0 && len(untrack) == 0 && !untrackAll {
				return cmd.Help()
			}
			changed, err := c.app.InitramfsEtc(c.originPath(cmd), app.InitramfsEtcOptions{
				Track:      track,
				Untrack:    untrack,
				UntrackAll: untrackAll,
			})
			return report(cmd, changed, err)
		},
	}
	cmd.Flags().StringArray("track", nil, "Track a file in /etc (repeatable)")
	cmd.Flags().StringArray("untrack", nil, "Stop tracking a file (repeatable)")
	cmd.Flags().Bool("untrack-all", false, "Stop tracking every file")
	return cmd
}
