// Package mdscan loads markdown documents as line sequences and locates the
// constructs the transformation tools care about: ATX headings, fenced code
// regions, and inline links. Structure detection goes through goldmark so a
// "# heading" inside a code fence is never mistaken for a real heading.
package mdscan

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrNotText marks content that cannot be processed as markdown text:
// invalid UTF-8 or embedded NUL bytes.
var ErrNotText = errors.New("content is not valid UTF-8 text")

// Heading is an ATX heading line within a document.
type Heading struct {
	Level int    // 1-6
	Text  string // trimmed heading text, as written in the source line
	Line  int    // 0-based index into Document.Lines
}

// Document is a markdown file held fully in memory for a single-pass
// rewrite. Lines carries the content without newline terminators; the
// original trailing-newline property is preserved on write so an untouched
// document round-trips byte for byte.
type Document struct {
	Path  string
	Lines []string

	mode      fs.FileMode
	endsInNL  bool
	headings  []Heading
	codeLines map[int]struct{}
}

// Load reads and scans the markdown file at path.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	doc, err := Parse(path, raw)
	if err != nil {
		return nil, err
	}
	doc.mode = mode
	return doc, nil
}

// Parse scans raw markdown content. The path is carried for reporting and
// write-back only.
func Parse(path string, raw []byte) (*Document, error) {
	if !utf8.Valid(raw) || bytes.IndexByte(raw, 0) >= 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNotText)
	}
	d := &Document{
		Path:     path,
		mode:     0o644,
		endsInNL: bytes.HasSuffix(raw, []byte("\n")),
	}
	if len(raw) > 0 {
		d.Lines = strings.Split(string(raw), "\n")
		if d.endsInNL {
			d.Lines = d.Lines[:len(d.Lines)-1]
		}
	}
	d.scan(raw)
	return d, nil
}

// Headings returns the document's ATX headings in source order. Line indices
// refer to the lines as scanned; insertions shift them.
func (d *Document) Headings() []Heading {
	return d.headings
}

// InsertLine splices a line in front of index i.
func (d *Document) InsertLine(i int, line string) {
	d.Lines = append(d.Lines, "")
	copy(d.Lines[i+1:], d.Lines[i:])
	d.Lines[i] = line
}

// Content reassembles the document text.
func (d *Document) Content() string {
	if len(d.Lines) == 0 {
		return ""
	}
	s := strings.Join(d.Lines, "\n")
	if d.endsInNL {
		s += "\n"
	}
	return s
}

// Write stores the document back to its path, keeping the original file mode.
func (d *Document) Write() error {
	return os.WriteFile(d.Path, []byte(d.Content()), d.mode)
}

// inCode reports whether a line index lies inside a code block.
func (d *Document) inCode(i int) bool {
	_, ok := d.codeLines[i]
	return ok
}
