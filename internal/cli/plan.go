package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"clone-generator/internal/plan"
)

// Plan output formats.
const (
	formatYAML = "yaml"
	formatDump = "dump"
)

func newPlanCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the clone plan without writing files",
		Long: `Prints which fields of every cloneable type are copied, deep cloned or
excluded, and why.

Formats:
  yaml   reviewable plan (default)
  dump   full artifacts including the generated statements`,
		Args: cobra.NoArgs,
		PreRunE: func(*cobra.Command, []string) error {
			if format != formatYAML && format != formatDump {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatYAML, formatDump)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.pipeline().Run(cmd.Context())
			if out == nil {
				return err
			}

			printDiagnostics(cmd.ErrOrStderr(), out.Diagnostics, a.settings.Verbose)

			switch format {
			case formatDump:
				fmt.Fprint(cmd.OutOrStdout(), plan.ExportDump(out.Plan))
			default:
				data, yamlErr := plan.ExportYAML(out.Plan)
				if yamlErr != nil {
					return yamlErr
				}

				if _, writeErr := cmd.OutOrStdout().Write(data); writeErr != nil {
					return writeErr
				}
			}

			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "output format: yaml or dump")

	return cmd
}
