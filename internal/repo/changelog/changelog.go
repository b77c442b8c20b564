// Package changelog maintains the append-only, per-file change history and
// renders line diffs into its entries.
package changelog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/keshon/gitnot/internal/config"
	"github.com/keshon/gitnot/internal/fsio"
)

// Markers written for changes that carry no diff report.
const (
	markerNewFile   = "New file added."
	markerDeleted   = "File was deleted."
	markerNoDiff    = "File changed (no readable diff)"
	markerNoDecode  = "File changed (encoding issues, diff skipped)"
	timestampLayout = "2006-01-02 15:04"
)

// Writer appends versioned entries to per-path changelog streams. History
// is never rewritten or deleted, even for files that go away.
type Writer struct {
	Paths config.Paths
}

func NewWriter(paths config.Paths) *Writer {
	return &Writer{Paths: paths}
}

// Seed creates the changelog for a path with its original marker. Used at
// first-time initialization; overwrites any previous stream.
func (w *Writer) Seed(rel string) error {
	p := w.Paths.ChangelogFile(rel)
	if err := fsio.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create changelog dir: %w", err)
	}
	line := fmt.Sprintf("# %s — original v0.1\n", rel)
	if err := fsio.WriteFile(p, []byte(line), 0o644); err != nil {
		return fmt.Errorf("seed changelog for %s: %w", rel, err)
	}
	return nil
}

// append writes one versioned section. The stream (and its directories) are
// created if missing.
func (w *Writer) append(rel string, version float64, ts time.Time, body string) error {
	p := w.Paths.ChangelogFile(rel)
	if err := fsio.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create changelog dir: %w", err)
	}

	f, err := fsio.OpenFile(p, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open changelog for %s: %w", rel, err)
	}
	defer f.Close()

	header := fmt.Sprintf("\n## v%.1f – %s\n", version, ts.Format(timestampLayout))
	if _, err := f.WriteString(header + body); err != nil {
		return fmt.Errorf("append changelog for %s: %w", rel, err)
	}
	return nil
}

// AppendNewFile records an addition.
func (w *Writer) AppendNewFile(rel string, version float64, ts time.Time) error {
	return w.append(rel, version, ts, markerNewFile+"\n")
}

// AppendDeleted records a deletion.
func (w *Writer) AppendDeleted(rel string, version float64, ts time.Time) error {
	return w.append(rel, version, ts, markerDeleted+"\n")
}

// AppendReport records a modification. A fully noise-suppressed report
// still gets its version header, just with no entries.
func (w *Writer) AppendReport(rel string, version float64, ts time.Time, rep Report) error {
	return w.append(rel, version, ts, rep.Format()+"\n")
}

// AppendNoDiff records a modification whose diff produced no lines, e.g.
// a digest change with byte-level differences only.
func (w *Writer) AppendNoDiff(rel string, version float64, ts time.Time) error {
	return w.append(rel, version, ts, markerNoDiff+"\n")
}

// AppendUndecodable records a modification whose content could not be read
// or decoded as text.
func (w *Writer) AppendUndecodable(rel string, version float64, ts time.Time) error {
	return w.append(rel, version, ts, markerNoDecode+"\n")
}
