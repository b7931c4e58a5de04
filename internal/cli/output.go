package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"clone-generator/internal/diagnostic"
	"clone-generator/internal/pipeline"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
	headerColor  = color.New(color.Bold)
)

// printDiagnostics writes every diagnostic, most severe first.
// Infos are only shown when verbose is set.
func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics, verbose bool) {
	for _, d := range diags.Errors {
		errorColor.Fprint(w, "error: ")
		fmt.Fprintln(w, d.String())
	}

	for _, d := range diags.Warnings {
		warningColor.Fprint(w, "warning: ")
		fmt.Fprintln(w, d.String())
	}

	if !verbose {
		return
	}

	for _, d := range diags.Infos {
		infoColor.Fprint(w, "info: ")
		fmt.Fprintln(w, d.String())
	}
}

// printSummary writes a one-line outcome of a run.
func printSummary(w io.Writer, verb string, out *pipeline.Output) {
	if out == nil {
		return
	}

	c := successColor
	if out.Diagnostics.HasErrors() {
		c = errorColor
	} else if len(out.Diagnostics.Warnings) > 0 {
		c = warningColor
	}

	c.Fprintf(w, "%s %d file(s) for %d type(s): %d error(s), %d warning(s)\n",
		verb, len(out.Files), out.Model.Len(),
		len(out.Diagnostics.Errors), len(out.Diagnostics.Warnings))
}

// printDiff writes a unified diff with added and removed lines colored.
func printDiff(w io.Writer, diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			headerColor.Fprint(w, line)
		case strings.HasPrefix(line, "+"):
			addedColor.Fprint(w, line)
		case strings.HasPrefix(line, "-"):
			removedColor.Fprint(w, line)
		default:
			fmt.Fprint(w, line)
		}
	}
}
