package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"clone-generator/internal/pipeline"
)

func newWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate clone methods when sources change",
		Long: `Generates once, then watches the loaded package directories and
regenerates after Go sources change. Generated files are ignored.
Stops on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			stderr := cmd.ErrOrStderr()

			return a.pipeline().Watch(ctx, func(out *pipeline.Output, err error) {
				if out != nil {
					printDiagnostics(stderr, out.Diagnostics, a.settings.Verbose)
					printSummary(cmd.OutOrStdout(), "generated", out)
				}

				if err != nil {
					errorColor.Fprintf(stderr, "Error: %v\n", err)
				}
			})
		},
	}
}
