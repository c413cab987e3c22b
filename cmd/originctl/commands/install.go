package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/origin/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install PACKAGE...",
		Short: "Request packages to be layered on the base",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			local, _ := cmd.Flags().GetBool("local")
			allowExisting, _ := cmd.Flags().GetBool("idempotent")
			changed, err := c.app.Install(c.originPath(cmd), args, app.InstallOptions{
				Local:         local,
				AllowExisting: allowExisting,
			})
			return report(cmd, changed, err)
		},
	}
	cmd.Flags().Bool("local", false, "Packages are local SHA256:NEVRA entries")
	cmd.Flags().Bool("idempotent", false, "Do nothing if a package is already requested")
	return cmd
}

func (c *CLI) newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall [PACKAGE...]",
		Short: "Drop requested packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			if all {
				changed, err := c.app.UninstallAll(c.originPath(cmd))
				return report(cmd, changed, err)
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			allowAbsent, _ := cmd.Flags().GetBool("idempotent")
			changed, err := c.app.Uninstall(c.originPath(cmd), args, allowAbsent)
			return report(cmd, changed, err)
		},
	}
	cmd.Flags().Bool("all", false, "Drop every requested package")
	cmd.Flags().Bool("idempotent", false, "Do nothing if a package is not requested")
	return cmd
}
