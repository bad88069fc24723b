package anchor

import "sort"

type tableKey struct {
	path string
	slug string
}

// Entry is one anchor table row, exported for persistence.
type Entry struct {
	Path  string
	Slug  string
	Label string
}

// Table maps (document path, heading slug) to the target label found or
// inserted above that heading. The empty slug keys a document's title
// anchor: the target above its first level-1 heading, used to resolve
// links that name the file without a fragment.
//
// Paths are stored as given; callers key and look up with the same
// normalized absolute form.
type Table struct {
	labels map[tableKey]string
}

func NewTable() *Table {
	return &Table{labels: make(map[tableKey]string)}
}

// Add registers a heading anchor. The first registration wins, matching
// document order: a duplicate slug later in the same file never steals the
// resolution of the first.
func (t *Table) Add(path, slug, label string) {
	k := tableKey{path: path, slug: slug}
	if _, ok := t.labels[k]; ok {
		return
	}
	t.labels[k] = label
}

// AddTitle registers the document-level title anchor.
func (t *Table) AddTitle(path, label string) {
	t.Add(path, "", label)
}

// Lookup resolves a heading slug within a document. An empty slug resolves
// the title anchor.
func (t *Table) Lookup(path, slug string) (string, bool) {
	label, ok := t.labels[tableKey{path: path, slug: slug}]
	return label, ok
}

// Slugs lists the anchored heading slugs of one document, sorted, for
// near-miss suggestions.
func (t *Table) Slugs(path string) []string {
	var out []string
	for k := range t.labels {
		if k.path == path && k.slug != "" {
			out = append(out, k.slug)
		}
	}
	sort.Strings(out)
	return out
}

// Entries returns every row sorted by path then slug, for persistence and
// listing.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.labels))
	for k, label := range t.labels {
		out = append(out, Entry{Path: k.path, Slug: k.slug, Label: label})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

// Len reports the number of registered anchors.
func (t *Table) Len() int {
	return len(t.labels)
}
