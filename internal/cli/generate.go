package cli

import (
	"github.com/spf13/cobra"
)

func newGenerateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate clone methods for every cloneable type",
		Long: `Loads the configured packages, plans every type marked "+clone" and writes
one <type>_clone.go file per type next to its declaration.

Types with errors are reported and skipped; the others are still written.
Existing files are only replaced if they carry a generated code header.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.pipeline().Generate(cmd.Context())
			if out != nil {
				printDiagnostics(cmd.ErrOrStderr(), out.Diagnostics, a.settings.Verbose)
				printSummary(cmd.OutOrStdout(), "generated", out)
			}

			return err
		},
	}
}
