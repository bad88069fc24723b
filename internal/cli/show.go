package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mithrel/mdref/internal/present"
)

func newShowCmd() *cobra.Command {
	var style string
	var width int

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Render a markdown file in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			if style == "" {
				style = app.Cfg.GetString("show.style")
			}
			if width == 0 {
				width = app.Cfg.GetInt("show.width")
			}
			return present.Markdown(cmd.OutOrStdout(), string(data), style, width)
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "glamour style name (overrides config)")
	cmd.Flags().IntVar(&width, "width", 0, "word-wrap width (overrides config)")

	return cmd
}
