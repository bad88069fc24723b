package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Summary renders the aggregate outcome. With colored false every style
// collapses to plain text, for pipes and logs.
func (r *Report) Summary(w io.Writer, name string, colored bool) {
	style := func(s lipgloss.Style, text string) string {
		if !colored {
			return text
		}
		return s.Render(text)
	}

	fmt.Fprintln(w, style(titleStyle, name+" summary"))
	fmt.Fprintf(w, "  %s\n", style(okStyle, fmt.Sprintf("%d changed, %d unchanged, %d skipped", r.changed, r.unchanged, r.skipped)))
	if n := len(r.warnings); n > 0 {
		fmt.Fprintf(w, "  %s\n", style(warnStyle, fmt.Sprintf("%d warning(s)", n)))
	}
	if n := len(r.failures); n > 0 {
		fmt.Fprintf(w, "  %s\n", style(failStyle, fmt.Sprintf("%d file(s) failed", n)))
		for _, d := range r.failures {
			fmt.Fprintf(w, "    %s\n", style(failStyle, d.String()))
		}
	}
}
