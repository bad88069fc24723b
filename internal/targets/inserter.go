// Package targets implements the anchor inserter: explicit target labels
// placed on their own line directly above each markdown heading, derived
// from the file name and heading text, unique within the configured scope.
package targets

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mithrel/mdref/internal/anchor"
	"github.com/mithrel/mdref/internal/mdscan"
	"github.com/mithrel/mdref/internal/report"
)

// Inserter inserts target markers across a markdown tree.
type Inserter struct {
	Scope  anchor.Scope
	DryRun bool
}

// Run processes files in order, rewriting each in place, and returns the
// anchor table covering both pre-existing and freshly inserted targets.
// Per-file failures are recorded and never stop the pass.
func (ins *Inserter) Run(files []string, rep *report.Report) *anchor.Table {
	table := anchor.NewTable()
	tree := anchor.NewSet()

	// Load everything up front and, in tree scope, reserve every label
	// already present anywhere: a freshly derived label must not collide
	// with a marker that only appears later in the walk.
	docs := make([]*mdscan.Document, 0, len(files))
	for _, path := range files {
		doc, err := mdscan.Load(path)
		if err != nil {
			rep.Fail(path, classify(err), err)
			continue
		}
		docs = append(docs, doc)
		if ins.Scope == anchor.ScopeTree {
			reserveExisting(doc, tree)
		}
	}

	for _, doc := range docs {
		set := tree
		if ins.Scope == anchor.ScopeFile {
			set = anchor.NewSet()
			reserveExisting(doc, set)
		}
		ins.process(doc, set, table, rep)
	}
	return table
}

func (ins *Inserter) process(doc *mdscan.Document, set *anchor.Set, table *anchor.Table, rep *report.Report) {
	base := fileBase(doc.Path)
	abs := mdscan.AbsPath(doc.Path)

	inserted := 0
	offset := 0
	sawH1 := false
	for _, h := range doc.Headings() {
		line := h.Line + offset
		slug := anchor.Slug(h.Text)

		var label string
		if line > 0 && anchor.IsMarker(doc.Lines[line-1]) {
			// Idempotence: an existing target, ours or hand-written,
			// means no insertion for this heading.
			label, _ = anchor.ParseMarker(doc.Lines[line-1])
			rep.Note(doc.Path, "heading %q already has a target", h.Text)
		} else {
			label = set.Claim(anchor.Label(base, h.Text))
			doc.InsertLine(line, anchor.Marker(label))
			offset++
			inserted++
		}

		if label != "" {
			table.Add(abs, slug, label)
		}
		if h.Level == 1 && !sawH1 {
			sawH1 = true
			if label != "" {
				table.AddTitle(abs, label)
			}
		}
	}

	switch {
	case inserted == 0:
		rep.Unchanged(doc.Path)
	case ins.DryRun:
		rep.Changed(doc.Path, fmt.Sprintf("would insert %d target(s)", inserted))
	default:
		if err := doc.Write(); err != nil {
			rep.Fail(doc.Path, report.KindIO, err)
			return
		}
		rep.Changed(doc.Path, fmt.Sprintf("inserted %d target(s)", inserted))
	}
}

// reserveExisting marks every resolvable label already present in doc.
func reserveExisting(doc *mdscan.Document, set *anchor.Set) {
	for _, h := range doc.Headings() {
		if h.Line == 0 {
			continue
		}
		if label, ok := anchor.ParseMarker(doc.Lines[h.Line-1]); ok {
			set.Reserve(label)
		}
	}
}

func fileBase(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func classify(err error) report.Kind {
	if errors.Is(err, mdscan.ErrNotText) {
		return report.KindParse
	}
	return report.KindIO
}
