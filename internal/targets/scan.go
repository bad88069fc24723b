package targets

import (
	"github.com/mithrel/mdref/internal/anchor"
	"github.com/mithrel/mdref/internal/mdscan"
	"github.com/mithrel/mdref/internal/report"
)

// ScanTable rebuilds the anchor table from markers already present in the
// tree without touching any file. This is the read-only form of the
// inserter's pass; the link rewriter runs it when no persisted index is
// supplied.
func ScanTable(files []string, rep *report.Report) *anchor.Table {
	table := anchor.NewTable()
	for _, path := range files {
		doc, err := mdscan.Load(path)
		if err != nil {
			rep.Fail(path, classify(err), err)
			continue
		}
		Collect(doc, table)
	}
	return table
}

// Collect records doc's anchored headings into table. Only headings that
// actually carry a resolvable target enter the table; the rewriter never
// invents labels. The title anchor is the first level-1 heading's label,
// when it has one.
func Collect(doc *mdscan.Document, table *anchor.Table) {
	abs := mdscan.AbsPath(doc.Path)
	sawH1 := false
	for _, h := range doc.Headings() {
		var label string
		if h.Line > 0 {
			label, _ = anchor.ParseMarker(doc.Lines[h.Line-1])
		}
		if label != "" {
			table.Add(abs, anchor.Slug(h.Text), label)
		}
		if h.Level == 1 && !sawH1 {
			sawH1 = true
			if label != "" {
				table.AddTitle(abs, label)
			}
		}
	}
}
