package mdscan

import (
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// ATX heading grammar: 1-6 hashes, whitespace, text. Setext headings are
// out of scope for anchor insertion.
var atxPattern = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)

// scan walks the goldmark AST once, collecting ATX headings and the line
// indices covered by code blocks. goldmark already knows that hashes inside
// a fence are literal text, which a bare line regex would get wrong.
func (d *Document) scan(raw []byte) {
	d.codeLines = make(map[int]struct{})
	if len(raw) == 0 {
		return
	}

	starts := lineStarts(raw)
	lineOf := func(offset int) int {
		return sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
	}

	md := goldmark.New()
	root := md.Parser().Parse(gtext.NewReader(raw))

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Lines().Len() == 0 {
				return ast.WalkSkipChildren, nil
			}
			line := lineOf(node.Lines().At(0).Start)
			if line < 0 || line >= len(d.Lines) {
				return ast.WalkSkipChildren, nil
			}
			m := atxPattern.FindStringSubmatch(d.Lines[line])
			if m == nil {
				// Setext heading; leave it alone.
				return ast.WalkSkipChildren, nil
			}
			d.headings = append(d.headings, Heading{
				Level: len(m[1]),
				Text:  strings.TrimSpace(m[2]),
				Line:  line,
			})
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			d.markFenced(node, lineOf)
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			for i := 0; i < node.Lines().Len(); i++ {
				d.codeLines[lineOf(node.Lines().At(i).Start)] = struct{}{}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
}

// markFenced covers the content lines of a fenced block plus the fence
// delimiter lines themselves.
func (d *Document) markFenced(node *ast.FencedCodeBlock, lineOf func(int) int) {
	lines := node.Lines()
	if lines.Len() == 0 {
		// Empty block: locate via the info string when present.
		if node.Info != nil {
			fence := lineOf(node.Info.Segment.Start)
			d.codeLines[fence] = struct{}{}
			if isFenceLine(d.lineAt(fence + 1)) {
				d.codeLines[fence+1] = struct{}{}
			}
		}
		return
	}
	first := lineOf(lines.At(0).Start)
	last := first
	for i := 0; i < lines.Len(); i++ {
		l := lineOf(lines.At(i).Start)
		d.codeLines[l] = struct{}{}
		if l > last {
			last = l
		}
	}
	// Opening fence sits right above the first content line; the closing
	// fence, if the block is terminated, right below the last.
	if first > 0 {
		d.codeLines[first-1] = struct{}{}
	}
	if isFenceLine(d.lineAt(last + 1)) {
		d.codeLines[last+1] = struct{}{}
	}
}

func (d *Document) lineAt(i int) string {
	if i < 0 || i >= len(d.Lines) {
		return ""
	}
	return d.Lines[i]
}

func isFenceLine(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "```") || strings.HasPrefix(t, "~~~")
}

// lineStarts returns the byte offset of each line start in raw.
func lineStarts(raw []byte) []int {
	starts := []int{0}
	for i, b := range raw {
		if b == '\n' && i+1 < len(raw) {
			starts = append(starts, i+1)
		}
	}
	return starts
}
