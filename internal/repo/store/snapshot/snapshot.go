// Package snapshot persists the on-disk mirror of tracked file contents as
// of the last commit, replacing it transactionally on each commit.
package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/keshon/gitnot/internal/config"
	"github.com/keshon/gitnot/internal/fsio"
	"github.com/keshon/gitnot/internal/progress"
)

// SnapshotContext handles the snapshot tree and the deleted-files archive.
type SnapshotContext struct {
	Paths config.Paths
}

func NewSnapshotContext(paths config.Paths) *SnapshotContext {
	return &SnapshotContext{Paths: paths}
}

// Exists reports whether a snapshot tree is present.
func (sc *SnapshotContext) Exists() bool {
	return fsio.IsDir(sc.Paths.SnapshotRoot())
}

// ReadFile returns the last committed copy of a tracked path.
func (sc *SnapshotContext) ReadFile(rel string) ([]byte, error) {
	return fsio.ReadFile(sc.Paths.SnapshotFile(rel))
}

// WriteFile copies one working tree file into the live snapshot tree.
// Used during first-time initialization, before a tree exists to swap.
func (sc *SnapshotContext) WriteFile(rel string) error {
	return copyFile(sc.Paths.WorkingFile(rel), sc.Paths.SnapshotFile(rel))
}

// ArchiveDeleted relocates the last committed copy of a no-longer-tracked
// path from the snapshot tree into the deleted archive.
func (sc *SnapshotContext) ArchiveDeleted(rel string) error {
	src := sc.Paths.SnapshotFile(rel)
	if !fsio.Exists(src) {
		return nil
	}
	dst := sc.Paths.DeletedFile(rel)
	if err := fsio.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create deleted dir: %w", err)
	}
	if fsio.Exists(dst) {
		// A same-named file was deleted before; keep its latest content.
		if err := fsio.Remove(dst); err != nil {
			return fmt.Errorf("replace archived copy %s: %w", rel, err)
		}
	}
	if err := fsio.Rename(src, dst); err != nil {
		return fmt.Errorf("archive deleted file %s: %w", rel, err)
	}
	return nil
}

// Replace materializes a full copy of the given working tree paths into a
// temporary directory, then swaps it in place of the old snapshot tree.
// On any failure during materialization the temp tree is removed and the
// old snapshot is left untouched.
func (sc *SnapshotContext) Replace(rels []string) error {
	tmp, err := fsio.MkdirTemp(sc.Paths.RepoRoot, "snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot dir: %w", err)
	}

	bar := progress.New(len(rels), "Storing snapshot")
	for _, rel := range rels {
		dst := filepath.Join(tmp, filepath.FromSlash(rel))
		if err := copyFile(sc.Paths.WorkingFile(rel), dst); err != nil {
			bar.Finish()
			fsio.RemoveAll(tmp)
			return fmt.Errorf("materialize snapshot for %s: %w", rel, err)
		}
		bar.Increment()
	}
	bar.Finish()

	old := sc.Paths.SnapshotRoot()
	if err := fsio.RemoveAll(old); err != nil {
		fsio.RemoveAll(tmp)
		return fmt.Errorf("remove old snapshot tree: %w", err)
	}
	if err := fsio.Rename(tmp, old); err != nil {
		fsio.RemoveAll(tmp)
		return fmt.Errorf("swap snapshot tree: %w", err)
	}
	return nil
}

// copyFile copies src to dst, creating parent directories and preserving
// permissions and modification time where the filesystem allows.
func copyFile(src, dst string) error {
	if err := fsio.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", dst, err)
	}

	in, err := fsio.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	out, err := fsio.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fi.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		fsio.Remove(dst)
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}

	// best effort metadata preservation
	_ = fsio.Chtimes(dst, fi.ModTime(), fi.ModTime())
	return nil
}
