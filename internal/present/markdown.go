// Package present renders markdown for terminal display.
package present

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// Markdown writes a glamour-rendered view of source to w. Style names
// follow glamour's standard styles; "auto" picks one from the terminal
// background.
func Markdown(w io.Writer, source, style string, width int) error {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
	}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(source)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
