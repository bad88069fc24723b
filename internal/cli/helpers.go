package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mithrel/mdref/internal/report"
	"github.com/mithrel/mdref/internal/wire"
)

// resolveRoot turns the optional positional argument into the tree root,
// defaulting to the current directory.
func resolveRoot(args []string) (string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("root %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("root %s is not a directory", root)
	}
	return root, nil
}

func newReport(app *wire.App) *report.Report {
	return report.New(os.Stderr, app.Cfg.GetBool("verbose"))
}

// colorEnabled applies the output.color setting, probing the terminal in
// auto mode.
func colorEnabled(app *wire.App) bool {
	switch app.Cfg.GetString("output.color") {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// finish prints the summary and maps failures to a non-zero exit. Warnings
// alone never fail a run.
func finish(cmd *cobra.Command, app *wire.App, rep *report.Report, name string) error {
	rep.Summary(cmd.OutOrStdout(), name, colorEnabled(app))
	if rep.Failed() {
		return fmt.Errorf("%d file(s) failed", len(rep.Failures()))
	}
	return nil
}
