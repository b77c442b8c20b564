package repo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/keshon/gitnot/internal/fsio"
	"github.com/keshon/gitnot/internal/repo/changelog"
	"github.com/keshon/gitnot/internal/repo/delta"
	"github.com/keshon/gitnot/internal/repo/meta"
)

// CommitResult summarizes one commit attempt.
type CommitResult struct {
	Version float64
	Tracked int
	Changed bool
	Delta   delta.Delta
}

// Commit detects changes against the last committed state, appends
// changelog entries per affected file, replaces the snapshot tree and
// persists the new hash index.
//
// The version is bumped tentatively before detection and rolled back when
// nothing changed. Per-file failures are warned and skipped; a failure to
// replace the snapshot tree aborts the commit and keeps the old index.
func (r *Repository) Commit() (CommitResult, error) {
	old := r.Files.LoadIndex()

	rels, err := r.Files.ScanWorkingTree()
	if err != nil {
		return CommitResult{}, fmt.Errorf("scan working tree: %w", err)
	}
	current := r.Files.HashAll(rels)

	version, err := r.Meta.BumpVersion()
	if err != nil {
		log.Warnf("could not write version: %v", err)
	}

	d := delta.Classify(old, current)
	if d.Empty() {
		if err := r.Meta.RollbackVersion(version); err != nil {
			log.Warnf("could not roll back version: %v", err)
		}
		return CommitResult{Version: version - meta.Step, Tracked: len(current)}, nil
	}

	ts := time.Now()

	for _, rel := range d.Added {
		if err := r.Logs.AppendNewFile(rel, version, ts); err != nil {
			log.Warnf("could not update changelog for %s: %v", rel, err)
		}
	}

	for _, rel := range d.Modified {
		r.logModified(rel, version, ts)
	}

	for _, rel := range d.Deleted {
		if err := r.Snapshots.ArchiveDeleted(rel); err != nil {
			log.Warnf("could not move deleted file %s: %v", rel, err)
		}
		if err := r.Logs.AppendDeleted(rel, version, ts); err != nil {
			log.Warnf("could not update changelog for deleted %s: %v", rel, err)
		}
	}

	if !r.Snapshots.Exists() {
		return CommitResult{}, fmt.Errorf("snapshot folder missing; run 'gitnot --init' to rebuild it")
	}
	if err := r.Snapshots.Replace(rels); err != nil {
		return CommitResult{}, err
	}

	// only now may the index agree with the swapped tree
	if err := r.Files.SaveIndex(current); err != nil {
		return CommitResult{}, err
	}

	return CommitResult{Version: version, Tracked: len(current), Changed: true, Delta: d}, nil
}

// logModified appends the rendered diff between the last snapshot copy and
// the working tree copy of one file. Read and decode failures degrade to
// generic markers; nothing here aborts the commit.
func (r *Repository) logModified(rel string, version float64, ts time.Time) {
	appendErr := func(err error) {
		if err != nil {
			log.Warnf("could not update changelog for %s: %v", rel, err)
		}
	}

	oldBytes, err := r.Snapshots.ReadFile(rel)
	if err != nil {
		appendErr(r.Logs.AppendUndecodable(rel, version, ts))
		return
	}
	newBytes, err := fsio.ReadFile(r.Paths.WorkingFile(rel))
	if err != nil {
		appendErr(r.Logs.AppendUndecodable(rel, version, ts))
		return
	}
	if !utf8.Valid(oldBytes) || !utf8.Valid(newBytes) {
		appendErr(r.Logs.AppendUndecodable(rel, version, ts))
		return
	}

	diffLines, err := changelog.Unified(splitLines(oldBytes), splitLines(newBytes))
	if err != nil {
		appendErr(r.Logs.AppendUndecodable(rel, version, ts))
		return
	}
	if len(diffLines) == 0 {
		appendErr(r.Logs.AppendNoDiff(rel, version, ts))
		return
	}
	appendErr(r.Logs.AppendReport(rel, version, ts, changelog.Render(diffLines)))
}

// splitLines splits file content into lines that keep their terminators.
func splitLines(b []byte) []string {
	lines := strings.SplitAfter(string(b), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
