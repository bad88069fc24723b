package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/mdref/internal/mdscan"
	"github.com/mithrel/mdref/internal/titles"
)

func newTitlesCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "titles [root]",
		Short: "Normalize generated title lines",
		Long: "titles walks the markdown tree under root (default .) and rewrites the\n" +
			"second line of every file matching the configured suffix into the title\n" +
			"heading derived from the file name.",
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
			n := &titles.Normalizer{
				Suffix:   app.Cfg.GetString("titles.suffix"),
				Template: app.Cfg.GetString("titles.template"),
				DryRun:   dryRun,
			}
			n.Run(files, rep)
			return finish(cmd, app, rep, "titles")
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report changes without writing files")

	return cmd
}
