// Package rewrite implements the link rewriter: local markdown links whose
// destination heading carries an explicit target are replaced by a
// cross-reference to that target, keeping the display text. Everything
// else — external URLs, in-page anchors, unresolvable destinations — is
// left byte-for-byte alone.
package rewrite

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mithrel/mdref/internal/anchor"
	"github.com/mithrel/mdref/internal/mdscan"
	"github.com/mithrel/mdref/internal/report"
	"github.com/mithrel/mdref/internal/util"
)

const maxSuggestions = 3

// Resolver is the anchor table view the rewriter needs. The empty slug
// resolves a document's title anchor.
type Resolver interface {
	Lookup(path, slug string) (string, bool)
	Slugs(path string) []string
}

// Rewriter rewrites local links across a markdown tree.
type Rewriter struct {
	Root   string // documentation root; destinations starting with "/" resolve against it
	Table  Resolver
	DryRun bool
}

// Run processes files in order, rewriting each in place. Per-file failures
// are recorded and never stop the pass.
func (rw *Rewriter) Run(files []string, rep *report.Report) {
	for _, path := range files {
		doc, err := mdscan.Load(path)
		if err != nil {
			rep.Fail(path, classify(err), err)
			continue
		}
		rw.process(doc, rep)
	}
}

func (rw *Rewriter) process(doc *mdscan.Document, rep *report.Report) {
	links := doc.Links()

	// Rewrite back to front so earlier offsets within a line stay valid.
	rewritten := 0
	for i := len(links) - 1; i >= 0; i-- {
		l := links[i]
		label, ok := rw.resolve(doc, l, rep)
		if !ok {
			continue
		}
		line := doc.Lines[l.Line]
		doc.Lines[l.Line] = line[:l.Start] + reference(l.Text, label) + line[l.End:]
		rewritten++
	}

	switch {
	case rewritten == 0:
		rep.Unchanged(doc.Path)
	case rw.DryRun:
		rep.Changed(doc.Path, fmt.Sprintf("would rewrite %d link(s)", rewritten))
	default:
		if err := doc.Write(); err != nil {
			rep.Fail(doc.Path, report.KindIO, err)
			return
		}
		rep.Changed(doc.Path, fmt.Sprintf("rewrote %d link(s)", rewritten))
	}
}

// resolve maps one link to a target label, or explains why it stays as is.
func (rw *Rewriter) resolve(doc *mdscan.Document, l mdscan.Link, rep *report.Report) (string, bool) {
	u, err := url.Parse(l.Dest)
	if err != nil {
		rep.Note(doc.Path, "unparseable link destination %q", l.Dest)
		return "", false
	}
	if u.Scheme != "" || u.Host != "" {
		// External URL, not ours to touch.
		return "", false
	}
	if u.Path == "" {
		// In-page "#fragment" link.
		return "", false
	}

	dest := rw.resolveDest(doc.Path, u.Path)
	if _, err := os.Stat(dest); err != nil {
		rep.Warn(doc.Path, report.KindResolution, "link %q: destination %s not found", l.Dest, dest)
		return "", false
	}
	key := mdscan.AbsPath(dest)

	if u.Fragment == "" {
		// Whole-file link: only rewrite when the destination has a title
		// anchor, otherwise the plain path link is the right form.
		label, ok := rw.Table.Lookup(key, "")
		if !ok {
			rep.Note(doc.Path, "link %q: %s has no title anchor, keeping path link", l.Dest, dest)
			return "", false
		}
		return label, true
	}

	slug := anchor.Slug(u.Fragment)
	label, ok := rw.Table.Lookup(key, slug)
	if !ok {
		msg := fmt.Sprintf("link %q: no anchored heading matches %q in %s", l.Dest, u.Fragment, dest)
		if s := util.Closest(slug, rw.Table.Slugs(key), maxSuggestions); len(s) > 0 {
			msg += " (closest: " + strings.Join(s, ", ") + ")"
		}
		rep.Warn(doc.Path, report.KindResolution, "%s", msg)
		return "", false
	}
	return label, true
}

// resolveDest turns a link path into a destination file path: rooted paths
// resolve against the tree root, everything else against the linking
// file's directory. A missing .md extension is appended.
func (rw *Rewriter) resolveDest(src, linkPath string) string {
	var p string
	if strings.HasPrefix(linkPath, "/") {
		p = filepath.Join(rw.Root, strings.TrimPrefix(linkPath, "/"))
	} else {
		p = filepath.Join(filepath.Dir(src), linkPath)
	}
	if !strings.HasSuffix(strings.ToLower(p), ".md") {
		p += ".md"
	}
	return filepath.Clean(p)
}

// reference renders the cross-reference that replaces a path link,
// preserving the original display text.
func reference(text, label string) string {
	return "{ref}`" + text + " <" + label + ">`"
}

func classify(err error) report.Kind {
	if errors.Is(err, mdscan.ErrNotText) {
		return report.KindParse
	}
	return report.KindIO
}
