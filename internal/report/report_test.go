package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportCounts(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	r.Changed("a.md", "2 targets inserted")
	r.Unchanged("b.md")
	r.Unchanged("c.md")
	r.Skipped("d.txt", "not markdown")

	changed, unchanged, skipped := r.Counts()
	assert.Equal(t, 1, changed)
	assert.Equal(t, 2, unchanged)
	assert.Equal(t, 1, skipped)
	assert.False(t, r.Failed())
}

func TestWarningsDoNotFail(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	r.Warn("b.md", KindResolution, "no anchored heading for %q", "missing")
	assert.False(t, r.Failed())
	assert.Len(t, r.Warnings(), 1)
	assert.Contains(t, buf.String(), "warning: b.md: [resolution]")
}

func TestFailuresFail(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	r.Fail("a.md", KindParse, errors.New("content is not valid UTF-8 text"))
	assert.True(t, r.Failed())
	assert.Contains(t, buf.String(), "error: a.md: [parse]")
}

func TestVerboseNotes(t *testing.T) {
	var quiet, loud bytes.Buffer

	New(&quiet, false).Note("a.md", "heading %q already has a target", "Intro")
	assert.Empty(t, quiet.String())

	New(&loud, true).Note("a.md", "heading %q already has a target", "Intro")
	assert.Contains(t, loud.String(), `heading "Intro" already has a target`)
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)
	r.Changed("a.md", "x")
	r.Warn("b.md", KindResolution, "miss")
	r.Fail("c.md", KindIO, errors.New("permission denied"))

	var sum strings.Builder
	r.Summary(&sum, "links", false)

	out := sum.String()
	assert.Contains(t, out, "links summary")
	assert.Contains(t, out, "1 changed, 0 unchanged, 0 skipped")
	assert.Contains(t, out, "1 warning(s)")
	assert.Contains(t, out, "1 file(s) failed")
	assert.Contains(t, out, "c.md: [io] permission denied")
}
