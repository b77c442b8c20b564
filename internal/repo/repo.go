// Package repo ties the store contexts together and implements the
// operations behind each CLI action: init, commit, status and show.
package repo

import (
	"errors"

	"github.com/keshon/gitnot/internal/config"
	"github.com/keshon/gitnot/internal/repo/changelog"
	"github.com/keshon/gitnot/internal/repo/delta"
	"github.com/keshon/gitnot/internal/repo/meta"
	"github.com/keshon/gitnot/internal/repo/store/file"
	"github.com/keshon/gitnot/internal/repo/store/snapshot"
)

// ErrNotInitialized marks operations attempted before `--init`.
var ErrNotInitialized = errors.New("gitnot not initialized in this folder")

// Repository wires every component for one invocation. No ambient state:
// paths and config are resolved once and threaded through the contexts.
type Repository struct {
	Paths     config.Paths
	Config    config.Config
	Files     *file.FileContext
	Snapshots *snapshot.SnapshotContext
	Logs      *changelog.Writer
	Meta      *meta.MetaContext
}

// New constructs a Repository rooted at the given working tree directory,
// loading config.json (or defaults) from the reserved dir.
func New(root string) *Repository {
	paths := config.NewPaths(root)
	cfg := config.Load(paths.ConfigPath())
	return &Repository{
		Paths:     paths,
		Config:    cfg,
		Files:     file.NewFileContext(paths, cfg),
		Snapshots: snapshot.NewSnapshotContext(paths),
		Logs:      changelog.NewWriter(paths),
		Meta:      meta.NewMetaContext(paths),
	}
}

// Open constructs a Repository and verifies it has been initialized.
func Open(root string) (*Repository, error) {
	r := New(root)
	if !r.Paths.Initialized() {
		return nil, ErrNotInitialized
	}
	return r, nil
}

// Version returns the current persisted version.
func (r *Repository) Version() float64 {
	return r.Meta.ReadVersion()
}

// Status classifies the working tree against the last committed index
// without committing anything.
func (r *Repository) Status() (delta.Delta, error) {
	old := r.Files.LoadIndex()
	rels, err := r.Files.ScanWorkingTree()
	if err != nil {
		return delta.Delta{}, err
	}
	return delta.Classify(old, r.Files.HashAll(rels)), nil
}
