package cli

import (
	"github.com/spf13/cobra"
)

func newCheckCommand(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify generated files are up to date",
		Long: `Renders every clone file in memory and compares it with the disk.
Nothing is written. Exits with a non-zero status if a file is missing, differs,
or was generated for a type that is no longer cloneable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, drifts, err := a.pipeline().Check(cmd.Context())
			if out == nil {
				return err
			}

			w := cmd.OutOrStdout()

			printDiagnostics(cmd.ErrOrStderr(), out.Diagnostics, a.settings.Verbose)

			for _, d := range drifts {
				if d.Orphan {
					warningColor.Fprintf(w, "orphaned: %s\n", d.Path)
					continue
				}

				warningColor.Fprintf(w, "stale: %s\n", d.Path)

				if !quiet {
					printDiff(w, d.Diff)
				}
			}

			if err == nil {
				successColor.Fprintf(w, "%d generated file(s) up to date\n", len(out.Files))
			}

			return err
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "list stale files without diffs")

	return cmd
}
