package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/mdref/internal/index"
	"github.com/mithrel/mdref/internal/mdscan"
	"github.com/mithrel/mdref/internal/targets"
	"github.com/mithrel/mdref/internal/wire"
)

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Manage the persisted anchor index",
	}

	cmd.AddCommand(newIndexBuildCmd())
	cmd.AddCommand(newIndexShowCmd())

	return cmd
}

func newIndexBuildCmd() *cobra.Command {
	var indexFlag string

	cmd := &cobra.Command{
		Use:   "build [root]",
		Short: "Rebuild the anchor index from the tree",
		Long: "build scans the markdown tree under root (default .) without modifying\n" +
			"any file and replaces the persisted anchor index with what it found.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			path, err := indexOrCfg(app, indexFlag)
			if err != nil {
				return err
			}
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			files, err := mdscan.Files(root)
			if err != nil {
				return err
			}

			rep := newReport(app)
			table := targets.ScanTable(files, rep)
			if err := saveIndex(cmd, app, path, table, files); err != nil {
				return err
			}
			return finish(cmd, app, rep, "index build")
		},
	}

	cmd.Flags().StringVar(&indexFlag, "index", "", "anchor index database path (overrides config)")

	return cmd
}

func newIndexShowCmd() *cobra.Command {
	var indexFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List the indexed anchors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			path, err := indexOrCfg(app, indexFlag)
			if err != nil {
				return err
			}
			store, err := index.Open(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer store.Close()

			table, sums, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range table.Entries() {
				slug := e.Slug
				if slug == "" {
					slug = "(title)"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", e.Path, slug, e.Label)
			}
			if stale := index.Stale(sums); len(stale) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d indexed file(s) changed since indexing\n", len(stale))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&indexFlag, "index", "", "anchor index database path (overrides config)")

	return cmd
}

func indexOrCfg(app *wire.App, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if path := app.Cfg.GetString("index.path"); path != "" {
		return path, nil
	}
	return "", fmt.Errorf("no index path: set index.path in config or pass --index")
}
