package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mithrel/mdref/internal/anchor"
	"github.com/mithrel/mdref/internal/index"
	"github.com/mithrel/mdref/internal/mdscan"
	"github.com/mithrel/mdref/internal/report"
	"github.com/mithrel/mdref/internal/rewrite"
	"github.com/mithrel/mdref/internal/targets"
	"github.com/mithrel/mdref/internal/wire"
)

func newLinksCmd() *cobra.Command {
	var dryRun bool
	var indexFlag string

	cmd := &cobra.Command{
		Use:   "links [root]",
		Short: "Rewrite local links into anchor references",
		Long: "links walks the markdown tree under root (default .) and replaces each\n" +
			"local link whose destination heading carries a target with a\n" +
			"\"{ref}`text <label>`\" reference, keeping the display text. External\n" +
			"URLs, in-page anchors and unresolvable links are left untouched.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			files, err := mdscan.Files(root)
			if err != nil {
				return err
			}

			rep := newReport(app)
			table, err := loadTable(cmd, app, indexFlag, files, rep)
			if err != nil {
				return err
			}

			rw := &rewrite.Rewriter{Root: root, Table: table, DryRun: dryRun}
			rw.Run(files, rep)
			return finish(cmd, app, rep, "links")
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report changes without writing files")
	cmd.Flags().StringVar(&indexFlag, "index", "", "anchor index database to resolve against (overrides config)")

	return cmd
}

// loadTable resolves the anchor table the rewriter runs against: the
// persisted index when one is configured and present, otherwise a fresh
// read-only scan of the tree. A stale index is used anyway, with a warning
// per out-of-date file.
func loadTable(cmd *cobra.Command, app *wire.App, indexFlag string, files []string, rep *report.Report) (*anchor.Table, error) {
	path := app.Cfg.GetString("index.path")
	if indexFlag != "" {
		path = indexFlag
	}
	if path == "" {
		return targets.ScanTable(files, rep), nil
	}
	if _, err := os.Stat(path); err != nil {
		app.Log.Printf("index %s not found, scanning tree instead", path)
		return targets.ScanTable(files, rep), nil
	}

	store, err := index.Open(cmd.Context(), path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	table, sums, err := store.Load(cmd.Context())
	if err != nil {
		return nil, err
	}
	for _, p := range index.Stale(sums) {
		rep.Warn(p, report.KindResolution, "changed since indexing, resolutions may be stale")
	}
	return table, nil
}
