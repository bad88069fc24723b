package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/mdref/internal/anchor"
	"github.com/mithrel/mdref/internal/index"
	"github.com/mithrel/mdref/internal/mdscan"
	"github.com/mithrel/mdref/internal/targets"
	"github.com/mithrel/mdref/internal/wire"
)

func newAnchorsCmd() *cobra.Command {
	var dryRun bool
	var scopeFlag string
	var indexFlag string

	cmd := &cobra.Command{
		Use:   "anchors [root]",
		Short: "Insert target labels above headings",
		Long: "anchors walks the markdown tree under root (default .) and inserts a\n" +
			"\"(label)=\" target line directly above every heading that does not\n" +
			"already have one. Labels derive from the file name and heading text and\n" +
			"stay unique within the configured scope; collisions get a -N suffix.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			scopeName := app.Cfg.GetString("scope")
			if scopeFlag != "" {
				scopeName = scopeFlag
			}
			scope, ok := anchor.ParseScope(scopeName)
			if !ok {
				return fmt.Errorf("invalid scope %q (want tree or file)", scopeName)
			}

			files, err := mdscan.Files(root)
			if err != nil {
				return err
			}

			rep := newReport(app)
			ins := &targets.Inserter{Scope: scope, DryRun: dryRun}
			table := ins.Run(files, rep)

			path := app.Cfg.GetString("index.path")
			if indexFlag != "" {
				path = indexFlag
			}
			if path != "" && !dryRun {
				if err := saveIndex(cmd, app, path, table, files); err != nil {
					app.Log.Printf("index not saved: %v", err)
				}
			}
			return finish(cmd, app, rep, "anchors")
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report changes without writing files")
	cmd.Flags().StringVar(&scopeFlag, "scope", "", "label uniqueness scope: tree or file (overrides config)")
	cmd.Flags().StringVar(&indexFlag, "index", "", "persist the anchor table to this database (overrides config)")

	return cmd
}

// saveIndex persists the freshly built anchor table along with content
// checksums of the files it was built from.
func saveIndex(cmd *cobra.Command, app *wire.App, path string, table *anchor.Table, files []string) error {
	store, err := index.Open(cmd.Context(), path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(cmd.Context(), table, index.ChecksumFiles(files)); err != nil {
		return err
	}
	app.Log.Printf("indexed %d anchor(s) to %s", table.Len(), path)
	return nil
}
