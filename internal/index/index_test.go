package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/mdref/internal/anchor"
	"github.com/mithrel/mdref/internal/mdscan"
)

func openTestStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "mdref-index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, ctx
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, ctx := openTestStore(t)

	table := anchor.NewTable()
	table.Add("/docs/a.md", "intro", "ref-a-intro")
	table.Add("/docs/a.md", "usage", "ref-a-usage")
	table.AddTitle("/docs/a.md", "ref-a-intro")
	table.Add("/docs/b.md", "setup", "ref-b-setup")

	sums := map[string]string{"/docs/a.md": "aa", "/docs/b.md": "bb"}
	require.NoError(t, store.Save(ctx, table, sums))

	got, gotSums, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, table.Entries(), got.Entries())
	assert.Equal(t, sums, gotSums)

	label, ok := got.Lookup("/docs/a.md", "")
	require.True(t, ok)
	assert.Equal(t, "ref-a-intro", label, "title anchor survives the round trip")
}

func TestSaveReplacesPreviousRun(t *testing.T) {
	store, ctx := openTestStore(t)

	first := anchor.NewTable()
	first.Add("/docs/old.md", "gone", "ref-old-gone")
	require.NoError(t, store.Save(ctx, first, map[string]string{"/docs/old.md": "x"}))

	second := anchor.NewTable()
	second.Add("/docs/new.md", "fresh", "ref-new-fresh")
	require.NoError(t, store.Save(ctx, second, map[string]string{"/docs/new.md": "y"}))

	got, sums, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
	_, ok := got.Lookup("/docs/old.md", "gone")
	assert.False(t, ok)
	assert.NotContains(t, sums, "/docs/old.md")
}

func TestChecksum(t *testing.T) {
	a := Checksum([]byte("hello"))
	b := Checksum([]byte("hello"))
	c := Checksum([]byte("world"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestStale(t *testing.T) {
	dir := t.TempDir()
	fresh := filepath.Join(dir, "fresh.md")
	changed := filepath.Join(dir, "changed.md")
	require.NoError(t, os.WriteFile(fresh, []byte("same\n"), 0o644))
	require.NoError(t, os.WriteFile(changed, []byte("before\n"), 0o644))

	sums := ChecksumFiles([]string{fresh, changed})
	require.Len(t, sums, 2)

	require.NoError(t, os.WriteFile(changed, []byte("after\n"), 0o644))

	stale := Stale(sums)
	assert.Equal(t, []string{mdscan.AbsPath(changed)}, stale)
}

func TestStale_DeletedFile(t *testing.T) {
	dir := t.TempDir()
	doomed := filepath.Join(dir, "doomed.md")
	require.NoError(t, os.WriteFile(doomed, []byte("x\n"), 0o644))

	sums := ChecksumFiles([]string{doomed})
	require.NoError(t, os.Remove(doomed))

	assert.Equal(t, []string{mdscan.AbsPath(doomed)}, Stale(sums))
}
