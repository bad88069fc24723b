package mdscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Headings(t *testing.T) {
	src := `# Title

some prose

## Getting Started

### Deep   Dive
text
`
	doc, err := Parse("x.md", []byte(src))
	require.NoError(t, err)

	hs := doc.Headings()
	require.Len(t, hs, 3)
	assert.Equal(t, Heading{Level: 1, Text: "Title", Line: 0}, hs[0])
	assert.Equal(t, Heading{Level: 2, Text: "Getting Started", Line: 4}, hs[1])
	assert.Equal(t, 3, hs[2].Level)
	assert.Equal(t, "Deep   Dive", hs[2].Text)
	assert.Equal(t, 6, hs[2].Line)
}

func TestParse_HeadingInsideFenceIgnored(t *testing.T) {
	src := "# Real\n\n```sh\n# not a heading\n## also not\n```\n\n## After\n"
	doc, err := Parse("x.md", []byte(src))
	require.NoError(t, err)

	hs := doc.Headings()
	require.Len(t, hs, 2)
	assert.Equal(t, "Real", hs[0].Text)
	assert.Equal(t, "After", hs[1].Text)
}

func TestParse_SetextHeadingIgnored(t *testing.T) {
	src := "Title\n=====\n\n# Real\n"
	doc, err := Parse("x.md", []byte(src))
	require.NoError(t, err)

	hs := doc.Headings()
	require.Len(t, hs, 1)
	assert.Equal(t, "Real", hs[0].Text)
	assert.Equal(t, 3, hs[0].Line)
}

func TestParse_NotText(t *testing.T) {
	_, err := Parse("x.md", []byte{0x68, 0x00, 0x69})
	assert.ErrorIs(t, err, ErrNotText)

	_, err = Parse("x.md", []byte{0xff, 0xfe, 0x41})
	assert.ErrorIs(t, err, ErrNotText)
}

func TestContent_RoundTrip(t *testing.T) {
	cases := []string{
		"",
		"\n",
		"no trailing newline",
		"a\nb\n",
		"a\n\n\nb",
	}
	for _, src := range cases {
		doc, err := Parse("x.md", []byte(src))
		require.NoError(t, err)
		assert.Equal(t, src, doc.Content(), "round trip of %q", src)
	}
}

func TestInsertLine(t *testing.T) {
	doc, err := Parse("x.md", []byte("a\nb\nc\n"))
	require.NoError(t, err)

	doc.InsertLine(1, "X")
	assert.Equal(t, "a\nX\nb\nc\n", doc.Content())

	doc.InsertLine(0, "Y")
	assert.Equal(t, "Y\na\nX\nb\nc\n", doc.Content())
}

func TestLinks(t *testing.T) {
	src := "See [intro](a.md#intro) and [api](sub/b.md).\n" +
		"![diagram](img.png) is an image, [ext](https://example.com) external.\n" +
		"```\n[not scanned](c.md)\n```\n"
	doc, err := Parse("x.md", []byte(src))
	require.NoError(t, err)

	links := doc.Links()
	require.Len(t, links, 3)

	assert.Equal(t, "intro", links[0].Text)
	assert.Equal(t, "a.md#intro", links[0].Dest)
	assert.Equal(t, 0, links[0].Line)
	line := doc.Lines[links[0].Line]
	assert.Equal(t, "[intro](a.md#intro)", line[links[0].Start:links[0].End])

	assert.Equal(t, "sub/b.md", links[1].Dest)
	assert.Equal(t, "https://example.com", links[2].Dest)
}

func TestLinks_TwoOnOneLine(t *testing.T) {
	doc, err := Parse("x.md", []byte("[a](a.md) then [b](b.md)\n"))
	require.NoError(t, err)

	links := doc.Links()
	require.Len(t, links, 2)
	assert.Equal(t, "a.md", links[0].Dest)
	assert.Equal(t, "b.md", links[1].Dest)
	assert.Greater(t, links[1].Start, links[0].End)
}

func TestLoadWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Hi\n"), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	doc.InsertLine(0, "(ref-doc-hi)=")
	require.NoError(t, doc.Write())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "(ref-doc-hi)=\n# Hi\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "file mode preserved")
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	for _, f := range []string{"b.md", "a.md", "sub/c.md", "sub/skip.txt", ".git/x.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("x\n"), 0o644))
	}

	files, err := Files(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.md"),
		filepath.Join(dir, "sub", "c.md"),
	}, files)
}
