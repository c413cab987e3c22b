package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/origin/internal/app"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the origin file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.Show(c.originPath(cmd))
			if err != nil {
				return err
			}
			asYAML, _ := cmd.Flags().GetBool("yaml")
			if asYAML {
				return writeYAML(cmd.OutOrStdout(), status)
			}
			writeStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
	cmd.Flags().Bool("yaml", false, "Print as YAML")
	return cmd
}

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show every origin file in the deployments directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			if dir == "" {
				dir = c.settings.Deployments
			}
			pattern, _ := cmd.Flags().GetString("pattern")
			if pattern == "" {
				pattern = c.settings.Pattern
			}

			statuses, err := c.app.Status(cmd.Context(), dir, pattern)
			if err != nil {
				return err
			}

			asYAML, _ := cmd.Flags().GetBool("yaml")
			if asYAML {
				return writeYAML(cmd.OutOrStdout(), statuses)
			}
			for i := range statuses {
				if i > 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout())
				}
				writeStatus(cmd.OutOrStdout(), &statuses[i])
			}
			return nil
		},
	}
	cmd.Flags().String("dir", "", "Deployments directory (default from originctl.yaml)")
	cmd.Flags().String("pattern", "", "File name pattern (default from originctl.yaml)")
	cmd.Flags().Bool("yaml", false, "Print as YAML")
	return cmd
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeStatus(w io.Writer, s *app.Status) {
	_, _ = fmt.Fprintf(w, "%s\n", s.Path)
	field := func(name, value string) {
		if value != "" {
			_, _ = fmt.Fprintf(w, "  %-22s %s\n", name+":", value)
		}
	}
	list := func(name string, values []string) {
		if len(values) > 0 {
			field(name, strings.Join(values, " "))
		}
	}

	field("Refspec", fmt.Sprintf("%s (%s)", s.Refspec, s.Kind))
	field("OverrideCommit", s.OverrideCommit)
	if s.CustomURL != "" {
		field("CustomOrigin", strings.TrimSpace(s.CustomURL+" "+s.CustomDescription))
	}
	field("UnconfiguredState", s.UnconfiguredState)
	list("RequestedPackages", s.Packages)
	list("LocalPackages", s.LocalPackages)
	list("RemovedBasePackages", s.RemovedPackages)
	list("ReplacedBasePackages", s.ReplacedPackages)
	if s.RegenerateInitramfs {
		field("Initramfs", strings.TrimSpace("regenerate "+strings.Join(s.InitramfsArgs, " ")))
	}
	list("InitramfsEtc", s.InitramfsEtc)
	if s.Cliwrap {
		field("Cliwrap", "enabled")
	}
	field("LocalAssembly", fmt.Sprintf("%t", s.MayRequireLocalAssembly))
}
