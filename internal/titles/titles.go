// Package titles normalizes the second line of suffix-matched documentation
// files into a title heading derived from the file name, e.g.
// "xilinx-dma-interface.md" gets "# The xilinx-dma interface" as line two.
package titles

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mithrel/mdref/internal/mdscan"
	"github.com/mithrel/mdref/internal/report"
)

// Normalizer rewrites title lines across a markdown tree.
type Normalizer struct {
	Suffix   string // file name suffix selecting the files, e.g. "-interface.md"
	Template string // fmt template for the heading, e.g. "# The %s interface"
	DryRun   bool
}

// Run processes files in order, rewriting each matched file in place.
// Files not matching the suffix are ignored silently; matched files with
// fewer than two lines are skipped with a diagnostic.
func (n *Normalizer) Run(files []string, rep *report.Report) {
	for _, path := range files {
		name := filepath.Base(path)
		if !strings.HasSuffix(name, n.Suffix) || name == n.Suffix {
			continue
		}
		n.process(path, strings.TrimSuffix(name, n.Suffix), rep)
	}
}

func (n *Normalizer) process(path, base string, rep *report.Report) {
	doc, err := mdscan.Load(path)
	if err != nil {
		rep.Fail(path, classify(err), err)
		return
	}
	if len(doc.Lines) < 2 {
		rep.Skipped(path, "fewer than two lines, no title line to replace")
		return
	}

	title := fmt.Sprintf(n.Template, base)
	if doc.Lines[1] == title {
		rep.Unchanged(path)
		return
	}

	doc.Lines[1] = title
	if n.DryRun {
		rep.Changed(path, fmt.Sprintf("would set title line to %q", title))
		return
	}
	if err := doc.Write(); err != nil {
		rep.Fail(path, report.KindIO, err)
		return
	}
	rep.Changed(path, fmt.Sprintf("title line set to %q", title))
}

func classify(err error) report.Kind {
	if errors.Is(err, mdscan.ErrNotText) {
		return report.KindParse
	}
	return report.KindIO
}
