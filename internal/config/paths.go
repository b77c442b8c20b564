package config

import (
	"path/filepath"

	"github.com/keshon/gitnot/internal/fsio"
)

// Paths bundles every persisted location for one invocation. It is resolved
// once and passed explicitly to each component.
type Paths struct {
	Root     string // tracked working tree root
	RepoRoot string // reserved metadata directory inside Root
}

// NewPaths resolves the persisted layout under the given working tree root.
func NewPaths(root string) Paths {
	return Paths{
		Root:     filepath.Clean(root),
		RepoRoot: filepath.Join(filepath.Clean(root), RepoDir),
	}
}

func (p Paths) SnapshotRoot() string  { return filepath.Join(p.RepoRoot, SnapshotDir) }
func (p Paths) ChangelogRoot() string { return filepath.Join(p.RepoRoot, ChangelogsDir) }
func (p Paths) DeletedRoot() string   { return filepath.Join(p.RepoRoot, DeletedDir) }
func (p Paths) HashesPath() string    { return filepath.Join(p.RepoRoot, HashesFile) }
func (p Paths) VersionPath() string   { return filepath.Join(p.RepoRoot, VersionFile) }
func (p Paths) ConfigPath() string    { return filepath.Join(p.RepoRoot, ConfigFile) }

// WorkingFile maps a tracked relative path to its working tree location.
func (p Paths) WorkingFile(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}

// SnapshotFile maps a tracked relative path to its last committed copy.
func (p Paths) SnapshotFile(rel string) string {
	return filepath.Join(p.SnapshotRoot(), filepath.FromSlash(rel))
}

// DeletedFile maps a tracked relative path to its deleted-archive location.
func (p Paths) DeletedFile(rel string) string {
	return filepath.Join(p.DeletedRoot(), filepath.FromSlash(rel))
}

// ChangelogFile maps a tracked relative path to its changelog stream.
func (p Paths) ChangelogFile(rel string) string {
	return filepath.Join(p.ChangelogRoot(), filepath.FromSlash(rel)+".log")
}

// Initialized reports whether the reserved directory exists.
func (p Paths) Initialized() bool {
	return fsio.IsDir(p.RepoRoot)
}
