package changelog

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/gitnot/internal/config"
)

var testTime = time.Date(2024, 5, 17, 14, 30, 0, 0, time.UTC)

func newTestWriter(t *testing.T) *Writer {
	t.Helper()
	return NewWriter(config.NewPaths(t.TempDir()))
}

func readLog(t *testing.T, w *Writer, rel string) string {
	t.Helper()
	data, err := os.ReadFile(w.Paths.ChangelogFile(rel))
	require.NoError(t, err)
	return string(data)
}

func TestSeed(t *testing.T) {
	w := newTestWriter(t)
	require.NoError(t, w.Seed("docs/a.txt"))

	assert.Equal(t, "# docs/a.txt — original v0.1\n", readLog(t, w, "docs/a.txt"))
}

func TestAppendNewFile(t *testing.T) {
	w := newTestWriter(t)
	require.NoError(t, w.Seed("a.txt"))
	require.NoError(t, w.AppendNewFile("a.txt", 0.2, testTime))

	got := readLog(t, w, "a.txt")
	assert.Contains(t, got, "## v0.2 – 2024-05-17 14:30")
	assert.Contains(t, got, "New file added.")
}

func TestAppendCreatesMissingStream(t *testing.T) {
	w := newTestWriter(t)
	// no seed: files added after init get their stream on first append
	require.NoError(t, w.AppendNewFile("sub/dir/new.txt", 0.3, testTime))

	got := readLog(t, w, "sub/dir/new.txt")
	assert.Contains(t, got, "## v0.3")
}

func TestAppendDeleted(t *testing.T) {
	w := newTestWriter(t)
	require.NoError(t, w.Seed("a.txt"))
	require.NoError(t, w.AppendDeleted("a.txt", 0.4, testTime))

	got := readLog(t, w, "a.txt")
	assert.Contains(t, got, "File was deleted.")
	// the seed line survives deletion
	assert.Contains(t, got, "original v0.1")
}

func TestAppendReport(t *testing.T) {
	w := newTestWriter(t)
	rep := Report{
		Added:   []string{"L1: hello world"},
		Removed: []string{"L1: hello"},
	}
	require.NoError(t, w.AppendReport("a.txt", 0.2, testTime, rep))

	got := readLog(t, w, "a.txt")
	assert.Contains(t, got, "### Added\nL1: hello world")
	assert.Contains(t, got, "### Removed\nL1: hello")
}

func TestAppendMarkers(t *testing.T) {
	w := newTestWriter(t)
	require.NoError(t, w.AppendNoDiff("a.txt", 0.2, testTime))
	require.NoError(t, w.AppendUndecodable("a.txt", 0.3, testTime))

	got := readLog(t, w, "a.txt")
	assert.Contains(t, got, "File changed (no readable diff)")
	assert.Contains(t, got, "File changed (encoding issues, diff skipped)")
}

func TestAppendOnlyGrowth(t *testing.T) {
	w := newTestWriter(t)
	require.NoError(t, w.Seed("a.txt"))
	before := readLog(t, w, "a.txt")

	require.NoError(t, w.AppendNewFile("a.txt", 0.2, testTime))
	after := readLog(t, w, "a.txt")

	assert.True(t, len(after) > len(before))
	assert.Equal(t, before, after[:len(before)], "existing history must never be rewritten")
}
