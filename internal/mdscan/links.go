package mdscan

import "regexp"

// Link is one inline link occurrence within a single source line.
// Start/End are byte offsets into that line covering the whole
// "[text](dest)" construct.
type Link struct {
	Line  int
	Start int
	End   int
	Text  string
	Dest  string
}

// The optional leading bang is captured so image embeds can be told apart
// from links; Go regexps have no lookbehind.
var linkPattern = regexp.MustCompile(`!?\[([^\]]+)\]\(([^)]+)\)`)

// Links returns the document's inline links in source order, skipping image
// embeds and anything inside code blocks. Inline code spans on prose lines
// are not masked; a link-shaped string in backticks will still match.
func (d *Document) Links() []Link {
	var out []Link
	for i, line := range d.Lines {
		if d.inCode(i) {
			continue
		}
		for _, m := range linkPattern.FindAllStringSubmatchIndex(line, -1) {
			if line[m[0]] == '!' {
				continue
			}
			out = append(out, Link{
				Line:  i,
				Start: m[0],
				End:   m[1],
				Text:  line[m[2]:m[3]],
				Dest:  line[m[4]:m[5]],
			})
		}
	}
	return out
}
